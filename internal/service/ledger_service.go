// Package service exposes the ledger as the Connect LedgerService.
package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler
	ledger *ledger.Ledger
}

// NewLedgerService creates a new LedgerService around l.
func NewLedgerService(l *ledger.Ledger) *LedgerService {
	return &LedgerService{ledger: l}
}

// CreateUser registers a user.
func (s *LedgerService) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	user, err := s.ledger.CreateUser(ctx, req.Msg.Username, req.Msg.Email)
	if err != nil {
		slog.Error("CreateUser failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CreateUserResponse{User: userToProto(user)}), nil
}

// GetUserById looks up a user; an unknown ID is reported with Found=false.
func (s *LedgerService) GetUserById(ctx context.Context, req *connect.Request[api.GetUserByIdRequest]) (*connect.Response[api.GetUserByIdResponse], error) {
	user, ok, err := s.ledger.GetUserByID(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetUserById failed", "user_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	resp := &api.GetUserByIdResponse{Found: ok}
	if ok {
		resp.User = userToProto(user)
	}
	return connect.NewResponse(resp), nil
}

// RegisterBankAccount adds a bank account for an owner.
func (s *LedgerService) RegisterBankAccount(ctx context.Context, req *connect.Request[api.RegisterBankAccountRequest]) (*connect.Response[api.RegisterBankAccountResponse], error) {
	account, err := s.ledger.RegisterBankAccount(ctx, req.Msg.Owner, req.Msg.Bank, req.Msg.AccountNumber)
	if err != nil {
		slog.Error("RegisterBankAccount failed", "owner", req.Msg.Owner, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RegisterBankAccountResponse{BankAccount: bankAccountToProto(account)}), nil
}

// GetBankAccountById looks up a bank account.
func (s *LedgerService) GetBankAccountById(ctx context.Context, req *connect.Request[api.GetBankAccountByIdRequest]) (*connect.Response[api.GetBankAccountByIdResponse], error) {
	account, ok, err := s.ledger.GetBankAccountByID(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetBankAccountById failed", "bank_account_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	resp := &api.GetBankAccountByIdResponse{Found: ok}
	if ok {
		resp.BankAccount = bankAccountToProto(account)
	}
	return connect.NewResponse(resp), nil
}

// GetBillById looks up a bill.
func (s *LedgerService) GetBillById(ctx context.Context, req *connect.Request[api.GetBillByIdRequest]) (*connect.Response[api.GetBillByIdResponse], error) {
	bill, ok, err := s.ledger.GetBillByID(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetBillById failed", "bill_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	resp := &api.GetBillByIdResponse{Found: ok}
	if ok {
		resp.Bill = billToProto(bill)
	}
	return connect.NewResponse(resp), nil
}

// GetSplitBillParticipant lists a bill's shares in split order.
func (s *LedgerService) GetSplitBillParticipant(ctx context.Context, req *connect.Request[api.GetSplitBillParticipantRequest]) (*connect.Response[api.GetSplitBillParticipantResponse], error) {
	shares, err := s.ledger.GetSplitBillParticipants(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("GetSplitBillParticipant failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, toConnectError(err)
	}

	protoShares := make([]*api.UserBill, len(shares))
	for i, ub := range shares {
		protoShares[i] = userBillToProto(ub)
	}
	return connect.NewResponse(&api.GetSplitBillParticipantResponse{UserBills: protoShares}), nil
}

// SplitBill splits an amount evenly among participants.
func (s *LedgerService) SplitBill(ctx context.Context, req *connect.Request[api.SplitBillRequest]) (*connect.Response[api.SplitBillResponse], error) {
	slog.Debug("Splitting bill",
		"owner", req.Msg.Owner,
		"participants", req.Msg.Participants,
		"amount", req.Msg.Amount,
	)

	bill, err := s.ledger.SplitBill(ctx, req.Msg.Owner, req.Msg.Participants, req.Msg.Amount)
	if err != nil {
		slog.Error("SplitBill failed", "owner", req.Msg.Owner, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SplitBillResponse{Bill: billToProto(bill)}), nil
}

// PayBill marks the caller's share as paid.
func (s *LedgerService) PayBill(ctx context.Context, req *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error) {
	ub, err := s.ledger.PayBill(ctx, req.Msg.UserBillID, req.Msg.UserID)
	if err != nil {
		slog.Error("PayBill failed", "user_bill_id", req.Msg.UserBillID, "user_id", req.Msg.UserID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PayBillResponse{UserBill: userBillToProto(ub)}), nil
}

// GetMyDueBill lists the bills with outstanding shares for a user.
func (s *LedgerService) GetMyDueBill(ctx context.Context, req *connect.Request[api.GetMyDueBillRequest]) (*connect.Response[api.GetMyDueBillResponse], error) {
	bills, err := s.ledger.GetMyDueBills(ctx, req.Msg.UserID)
	if err != nil {
		slog.Error("GetMyDueBill failed", "user_id", req.Msg.UserID, "error", err)
		return nil, toConnectError(err)
	}

	protoBills := make([]*api.Bill, len(bills))
	for i, b := range bills {
		protoBills[i] = billToProto(b)
	}
	return connect.NewResponse(&api.GetMyDueBillResponse{Bills: protoBills}), nil
}

// GetPaymentMethodsFromUserBill lists the bank accounts a share can be paid into.
func (s *LedgerService) GetPaymentMethodsFromUserBill(ctx context.Context, req *connect.Request[api.GetPaymentMethodsFromUserBillRequest]) (*connect.Response[api.GetPaymentMethodsFromUserBillResponse], error) {
	accounts, err := s.ledger.GetPaymentMethodsFromUserBill(ctx, req.Msg.UserBillID)
	if err != nil {
		slog.Error("GetPaymentMethodsFromUserBill failed", "user_bill_id", req.Msg.UserBillID, "error", err)
		return nil, toConnectError(err)
	}

	protoAccounts := make([]*api.BankAccount, len(accounts))
	for i, a := range accounts {
		protoAccounts[i] = bankAccountToProto(a)
	}
	return connect.NewResponse(&api.GetPaymentMethodsFromUserBillResponse{BankAccounts: protoAccounts}), nil
}

// RemoveBankAccount deletes a bank account.
func (s *LedgerService) RemoveBankAccount(ctx context.Context, req *connect.Request[api.RemoveBankAccountRequest]) (*connect.Response[api.RemoveBankAccountResponse], error) {
	account, err := s.ledger.RemoveBankAccount(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("RemoveBankAccount failed", "bank_account_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RemoveBankAccountResponse{BankAccount: bankAccountToProto(account)}), nil
}
