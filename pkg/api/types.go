package api

// User is the wire form of a registered user.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	BankAccounts []string `json:"bankAccounts"`
	Bills        []string `json:"bills"`
}

// BankAccount is the wire form of a payout destination.
type BankAccount struct {
	ID            string `json:"id"`
	Owner         string `json:"owner"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
}

// Bill is the wire form of a split bill.
type Bill struct {
	ID        string   `json:"id"`
	Owner     string   `json:"owner"`
	CreatedAt int64    `json:"createdAt,string"` // Unix nanoseconds
	UserBills []string `json:"userBills"`
}

// UserBill is the wire form of one participant's share.
type UserBill struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Bill   string `json:"bill"`
	Amount uint64 `json:"amount,string"`
	Paid   bool   `json:"paid"`
}
