package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// userBillCollection stores bill shares.
// SQLite integers are signed, so amounts are stored as the int64 with the
// same bit pattern and converted back on read.
type userBillCollection struct {
	ex executor
}

// Get retrieves a share by ID.
func (c userBillCollection) Get(ctx context.Context, id string) (models.UserBill, bool, error) {
	var (
		userBill models.UserBill
		amount   int64
	)
	err := c.ex.q().QueryRowContext(ctx,
		"SELECT id, user_id, bill_id, amount, paid FROM user_bills WHERE id = ?",
		id,
	).Scan(&userBill.ID, &userBill.User, &userBill.Bill, &amount, &userBill.Paid)
	if err == sql.ErrNoRows {
		return models.UserBill{}, false, nil
	}
	if err != nil {
		return models.UserBill{}, false, fmt.Errorf("failed to get user bill: %w", err)
	}
	userBill.Amount = uint64(amount)
	return userBill, true, nil
}

// Insert upserts a share.
func (c userBillCollection) Insert(ctx context.Context, userBill models.UserBill) error {
	_, err := c.ex.q().ExecContext(ctx,
		`INSERT INTO user_bills (id, user_id, bill_id, amount, paid) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, bill_id = excluded.bill_id,
		     amount = excluded.amount, paid = excluded.paid`,
		userBill.ID, userBill.User, userBill.Bill, int64(userBill.Amount), userBill.Paid,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user bill: %w", err)
	}
	return nil
}
