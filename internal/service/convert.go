package service

import (
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

func userToProto(u models.User) *api.User {
	return &api.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		BankAccounts: nonNil(u.BankAccounts),
		Bills:        nonNil(u.Bills),
	}
}

func bankAccountToProto(a models.BankAccount) *api.BankAccount {
	return &api.BankAccount{
		ID:            a.ID,
		Owner:         a.Owner,
		Bank:          a.Bank,
		AccountNumber: a.AccountNumber,
	}
}

func billToProto(b models.Bill) *api.Bill {
	return &api.Bill{
		ID:        b.ID,
		Owner:     b.Owner,
		CreatedAt: b.CreatedAt,
		UserBills: nonNil(b.UserBills),
	}
}

func userBillToProto(ub models.UserBill) *api.UserBill {
	return &api.UserBill{
		ID:     ub.ID,
		User:   ub.User,
		Bill:   ub.Bill,
		Amount: ub.Amount,
		Paid:   ub.Paid,
	}
}

// nonNil keeps empty ID lists encoded as [] rather than null.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
