package models

// Bill represents a total owed to its owner, split among participants.
// A bill never changes after creation; payment state lives on its UserBills.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Owner is the ID of the payee.
	Owner string

	// CreatedAt is the Unix timestamp in nanoseconds when the bill was split.
	CreatedAt int64

	// UserBills lists the share IDs in participant order.
	UserBills []string
}

// UserBill is one participant's share of a Bill.
type UserBill struct {
	// ID is the unique identifier for the share (UUID format).
	ID string

	// User is the participant who owes this share. Never changes after creation.
	User string

	// Bill is the ID of the parent bill.
	Bill string

	// Amount is the share in the smallest currency unit.
	Amount uint64

	// Paid flips to true once the participant records payment.
	Paid bool
}
