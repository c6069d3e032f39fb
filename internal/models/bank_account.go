package models

// BankAccount is a payout destination owned by a single user.
type BankAccount struct {
	// ID is the unique identifier for the account (UUID format).
	ID string

	// Owner is the ID of the user who registered the account.
	Owner string

	// Bank is the human-readable bank name.
	Bank string

	// AccountNumber is stored verbatim; no format validation is applied.
	AccountNumber string
}
