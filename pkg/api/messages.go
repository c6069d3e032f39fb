package api

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreateUserResponse struct {
	User *User `json:"user"`
}

type GetUserByIdRequest struct {
	ID string `json:"id"`
}

// GetUserByIdResponse carries User only when Found is true.
type GetUserByIdResponse struct {
	Found bool  `json:"found"`
	User  *User `json:"user,omitempty"`
}

type RegisterBankAccountRequest struct {
	Owner         string `json:"owner"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
}

type RegisterBankAccountResponse struct {
	BankAccount *BankAccount `json:"bankAccount"`
}

type GetBankAccountByIdRequest struct {
	ID string `json:"id"`
}

type GetBankAccountByIdResponse struct {
	Found       bool         `json:"found"`
	BankAccount *BankAccount `json:"bankAccount,omitempty"`
}

type GetBillByIdRequest struct {
	ID string `json:"id"`
}

type GetBillByIdResponse struct {
	Found bool  `json:"found"`
	Bill  *Bill `json:"bill,omitempty"`
}

type GetSplitBillParticipantRequest struct {
	BillID string `json:"billId"`
}

type GetSplitBillParticipantResponse struct {
	UserBills []*UserBill `json:"userBills"`
}

type SplitBillRequest struct {
	Owner        string   `json:"owner"`
	Participants []string `json:"participants"`
	Amount       uint64   `json:"amount,string"`
}

type SplitBillResponse struct {
	Bill *Bill `json:"bill"`
}

type PayBillRequest struct {
	UserBillID string `json:"userBillId"`
	UserID     string `json:"userId"`
}

type PayBillResponse struct {
	UserBill *UserBill `json:"userBill"`
}

type GetMyDueBillRequest struct {
	UserID string `json:"userId"`
}

type GetMyDueBillResponse struct {
	Bills []*Bill `json:"bills"`
}

type GetPaymentMethodsFromUserBillRequest struct {
	UserBillID string `json:"userBillId"`
}

type GetPaymentMethodsFromUserBillResponse struct {
	BankAccounts []*BankAccount `json:"bankAccounts"`
}

type RemoveBankAccountRequest struct {
	ID string `json:"id"`
}

type RemoveBankAccountResponse struct {
	BankAccount *BankAccount `json:"bankAccount"`
}
