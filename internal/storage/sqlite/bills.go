package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

const (
	selectBillUserBillIDs = "SELECT user_bill_id FROM bill_user_bill_ids WHERE bill_id = ? ORDER BY position"
	deleteBillUserBillIDs = "DELETE FROM bill_user_bill_ids WHERE bill_id = ?"
	insertBillUserBillID  = "INSERT INTO bill_user_bill_ids (bill_id, position, user_bill_id) VALUES (?, ?, ?)"
)

// billCollection stores bills and their ordered share IDs.
type billCollection struct {
	ex executor
}

// Get retrieves a bill by ID, including its share IDs in split order.
func (c billCollection) Get(ctx context.Context, id string) (models.Bill, bool, error) {
	q := c.ex.q()

	var bill models.Bill
	err := q.QueryRowContext(ctx,
		"SELECT id, owner, created_at FROM bills WHERE id = ?",
		id,
	).Scan(&bill.ID, &bill.Owner, &bill.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Bill{}, false, nil
	}
	if err != nil {
		return models.Bill{}, false, fmt.Errorf("failed to get bill: %w", err)
	}

	bill.UserBills, err = readIDs(ctx, q, selectBillUserBillIDs, id)
	if err != nil {
		return models.Bill{}, false, fmt.Errorf("failed to get bill shares: %w", err)
	}

	return bill, true, nil
}

// Insert upserts a bill and rewrites its share ID list.
func (c billCollection) Insert(ctx context.Context, bill models.Bill) error {
	return c.ex.write(ctx, func(q querier) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO bills (id, owner, created_at) VALUES (?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET owner = excluded.owner, created_at = excluded.created_at`,
			bill.ID, bill.Owner, bill.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bill: %w", err)
		}

		if err := replaceIDs(ctx, q, deleteBillUserBillIDs, insertBillUserBillID, bill.ID, bill.UserBills); err != nil {
			return fmt.Errorf("failed to write bill shares: %w", err)
		}
		return nil
	})
}
