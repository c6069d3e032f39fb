package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// bankAccountCollection stores bank accounts. It is the only collection
// that supports removal.
type bankAccountCollection struct {
	ex executor
}

// Get retrieves a bank account by ID.
func (c bankAccountCollection) Get(ctx context.Context, id string) (models.BankAccount, bool, error) {
	var account models.BankAccount
	err := c.ex.q().QueryRowContext(ctx,
		"SELECT id, owner, bank, account_number FROM bank_accounts WHERE id = ?",
		id,
	).Scan(&account.ID, &account.Owner, &account.Bank, &account.AccountNumber)
	if err == sql.ErrNoRows {
		return models.BankAccount{}, false, nil
	}
	if err != nil {
		return models.BankAccount{}, false, fmt.Errorf("failed to get bank account: %w", err)
	}
	return account, true, nil
}

// Insert upserts a bank account.
func (c bankAccountCollection) Insert(ctx context.Context, account models.BankAccount) error {
	_, err := c.ex.q().ExecContext(ctx,
		`INSERT INTO bank_accounts (id, owner, bank, account_number) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET owner = excluded.owner, bank = excluded.bank, account_number = excluded.account_number`,
		account.ID, account.Owner, account.Bank, account.AccountNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bank account: %w", err)
	}
	return nil
}

// Remove deletes a bank account by ID and returns the deleted record.
// Owners keep the ID in their list; readers skip it from then on.
func (c bankAccountCollection) Remove(ctx context.Context, id string) (models.BankAccount, bool, error) {
	var (
		account models.BankAccount
		found   bool
	)
	err := c.ex.write(ctx, func(q querier) error {
		err := q.QueryRowContext(ctx,
			"SELECT id, owner, bank, account_number FROM bank_accounts WHERE id = ?",
			id,
		).Scan(&account.ID, &account.Owner, &account.Bank, &account.AccountNumber)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to check bank account existence: %w", err)
		}
		found = true

		if _, err := q.ExecContext(ctx, "DELETE FROM bank_accounts WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to delete bank account: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.BankAccount{}, false, err
	}
	return account, found, nil
}
