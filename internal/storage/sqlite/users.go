package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

const (
	selectUserBankAccountIDs = "SELECT bank_account_id FROM user_bank_account_ids WHERE user_id = ? ORDER BY position"
	deleteUserBankAccountIDs = "DELETE FROM user_bank_account_ids WHERE user_id = ?"
	insertUserBankAccountID  = "INSERT INTO user_bank_account_ids (user_id, position, bank_account_id) VALUES (?, ?, ?)"

	selectUserBillIDs = "SELECT user_bill_id FROM user_bill_ids WHERE user_id = ? ORDER BY position"
	deleteUserBillIDs = "DELETE FROM user_bill_ids WHERE user_id = ?"
	insertUserBillID  = "INSERT INTO user_bill_ids (user_id, position, user_bill_id) VALUES (?, ?, ?)"
)

// userCollection stores users and their ordered ID lists.
type userCollection struct {
	ex executor
}

// Get retrieves a user by ID, including both ID lists.
func (c userCollection) Get(ctx context.Context, id string) (models.User, bool, error) {
	q := c.ex.q()

	var user models.User
	err := q.QueryRowContext(ctx,
		"SELECT id, username, email FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.Username, &user.Email)
	if err == sql.ErrNoRows {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to get user: %w", err)
	}

	user.BankAccounts, err = readIDs(ctx, q, selectUserBankAccountIDs, id)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to get user bank accounts: %w", err)
	}

	user.Bills, err = readIDs(ctx, q, selectUserBillIDs, id)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to get user bills: %w", err)
	}

	return user, true, nil
}

// Insert upserts a user and rewrites its ID lists.
func (c userCollection) Insert(ctx context.Context, user models.User) error {
	return c.ex.write(ctx, func(q querier) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO users (id, username, email) VALUES (?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET username = excluded.username, email = excluded.email`,
			user.ID, user.Username, user.Email,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}

		if err := replaceIDs(ctx, q, deleteUserBankAccountIDs, insertUserBankAccountID, user.ID, user.BankAccounts); err != nil {
			return fmt.Errorf("failed to write user bank accounts: %w", err)
		}

		if err := replaceIDs(ctx, q, deleteUserBillIDs, insertUserBillID, user.ID, user.Bills); err != nil {
			return fmt.Errorf("failed to write user bills: %w", err)
		}

		return nil
	})
}
