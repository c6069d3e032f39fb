package calculator

import "github.com/mmynk/splitledger/internal/models"

// BillBalance summarizes payment progress across a bill's shares.
type BillBalance struct {
	Total       uint64 // Sum of all share amounts
	Paid        uint64 // Sum of paid share amounts
	Outstanding uint64 // Sum of unpaid share amounts
	PaidCount   int    // Number of paid shares
	ShareCount  int
}

// SummarizeShares aggregates paid and outstanding amounts over shares.
func SummarizeShares(shares []models.UserBill) BillBalance {
	var b BillBalance
	for _, s := range shares {
		b.ShareCount++
		b.Total += s.Amount
		if s.Paid {
			b.PaidCount++
			b.Paid += s.Amount
		} else {
			b.Outstanding += s.Amount
		}
	}
	return b
}

// Settled reports whether every share has been paid.
func (b BillBalance) Settled() bool {
	return b.PaidCount == b.ShareCount
}
