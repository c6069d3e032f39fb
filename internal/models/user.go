package models

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the display name chosen at registration.
	Username string

	// Email is the user's email address. Uniqueness is not enforced.
	Email string

	// BankAccounts lists the IDs of accounts this user registered, in registration order.
	BankAccounts []string

	// Bills lists UserBill IDs the user is party to.
	// No operation currently appends to it, so it stays empty unless seeded directly
	// in storage.
	Bills []string
}
