package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/pkg/api"
)

// codeFor maps a ledger error kind to a Connect status code.
func codeFor(kind ledger.ErrorKind) connect.Code {
	switch kind {
	case ledger.KindBillNotFound, ledger.KindUserNotFound, ledger.KindBankAccountNotFound:
		return connect.CodeNotFound
	case ledger.KindUserNotInBill:
		return connect.CodePermissionDenied
	case ledger.KindEmptyParticipantList:
		return connect.CodeInvalidArgument
	default:
		return connect.CodeUnknown
	}
}

// toConnectError converts err into a Connect error. Ledger errors keep their
// kind and identifier in the error metadata; anything else is internal.
func toConnectError(err error) *connect.Error {
	le, ok := ledger.AsError(err)
	if !ok {
		return connect.NewError(connect.CodeInternal, err)
	}
	cerr := connect.NewError(codeFor(le.Kind), err)
	cerr.Meta().Set(api.ErrorKindHeader, string(le.Kind))
	cerr.Meta().Set(api.ErrorIDHeader, le.ID)
	return cerr
}

// FromConnectError rebuilds the *ledger.Error carried by a failed call.
// Errors without ledger metadata are returned unchanged.
func FromConnectError(err error) error {
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		return err
	}
	kind, ok := ledger.ParseKind(cerr.Meta().Get(api.ErrorKindHeader))
	if !ok {
		return err
	}
	return ledger.NewError(kind, cerr.Meta().Get(api.ErrorIDHeader))
}
