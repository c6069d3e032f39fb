package ledger

import (
	"errors"
	"fmt"
)

// ErrorKind names one failure case of a ledger operation.
type ErrorKind string

const (
	KindBillNotFound         ErrorKind = "BillNotFound"
	KindUserNotFound         ErrorKind = "UserNotFound" // reserved; no operation returns it yet
	KindBankAccountNotFound  ErrorKind = "BankAccountNotFound"
	KindUserNotInBill        ErrorKind = "UserNotInBill"
	KindEmptyParticipantList ErrorKind = "EmptyParticipantList"
)

var kinds = map[ErrorKind]string{
	KindBillNotFound:         "bill not found",
	KindUserNotFound:         "user not found",
	KindBankAccountNotFound:  "bank account not found",
	KindUserNotInBill:        "user not in bill",
	KindEmptyParticipantList: "participant list is empty",
}

// ParseKind returns the ErrorKind named s.
func ParseKind(s string) (ErrorKind, bool) {
	k := ErrorKind(s)
	_, ok := kinds[k]
	return k, ok
}

// Error is a ledger failure tagged with its kind and the identifier it concerns.
//
// The ID payload depends on the kind:
//   - BillNotFound: the bill or share ID that was looked up
//   - BankAccountNotFound: the account ID that was looked up
//   - UserNotInBill: the participant who actually owns the share
//   - EmptyParticipantList: the would-be bill owner
type Error struct {
	Kind ErrorKind
	ID   string
}

// NewError returns an Error of the given kind carrying id.
func NewError(kind ErrorKind, id string) *Error {
	return &Error{Kind: kind, ID: id}
}

func (e *Error) Error() string {
	msg, ok := kinds[e.Kind]
	if !ok {
		msg = string(e.Kind)
	}
	if e.ID == "" {
		return "ledger: " + msg
	}
	return fmt.Sprintf("ledger: %s: %s", msg, e.ID)
}

// Is matches any Error of the same kind, so errors.Is(err, ErrBillNotFound)
// holds regardless of the carried ID.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrBillNotFound         = &Error{Kind: KindBillNotFound}
	ErrUserNotFound         = &Error{Kind: KindUserNotFound}
	ErrBankAccountNotFound  = &Error{Kind: KindBankAccountNotFound}
	ErrUserNotInBill        = &Error{Kind: KindUserNotInBill}
	ErrEmptyParticipantList = &Error{Kind: KindEmptyParticipantList}
)

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBillNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrBankAccountNotFound)
}

// AsError extracts the *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var le *Error
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
