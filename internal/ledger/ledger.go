// Package ledger implements the bill-splitting operations on top of storage.Store.
//
// Entities refer to each other through ordered ID lists, and every lookup walks
// those lists with the resolver package. Lookups of the primary entity of a
// mutating operation fail with an *Error; best-effort chains (due bills,
// payment methods) degrade to empty or partial results instead.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/resolver"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ledger runs the ledger operations against a store.
//
// Mutating operations are serialized by an internal lock; reads are not.
type Ledger struct {
	store storage.Store
	newID func() string
	now   func() time.Time

	mu sync.Mutex
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// WithClock overrides time.Now for bill timestamps.
func WithClock(fn func() time.Time) Option {
	return func(l *Ledger) { l.now = fn }
}

// New creates a Ledger backed by store.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateUser registers a new user with empty account and bill lists.
func (l *Ledger) CreateUser(ctx context.Context, username, email string) (models.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user := models.User{
		ID:           l.newID(),
		Username:     username,
		Email:        email,
		BankAccounts: []string{},
		Bills:        []string{},
	}
	if err := l.store.Users().Insert(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "user_id", user.ID, "username", username)
	return user, nil
}

// GetUserByID looks up a user. The boolean is false when no such user exists.
func (l *Ledger) GetUserByID(ctx context.Context, id string) (models.User, bool, error) {
	return l.store.Users().Get(ctx, id)
}

// RegisterBankAccount stores a new account for owner and appends it to the
// owner's account list. The owner is not required to exist; an account for an
// unknown owner is stored but linked to nobody.
func (l *Ledger) RegisterBankAccount(ctx context.Context, owner, bank, accountNumber string) (models.BankAccount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account := models.BankAccount{
		ID:            l.newID(),
		Owner:         owner,
		Bank:          bank,
		AccountNumber: accountNumber,
	}
	if err := l.store.BankAccounts().Insert(ctx, account); err != nil {
		return models.BankAccount{}, fmt.Errorf("failed to register bank account: %w", err)
	}

	user, ok, err := l.store.Users().Get(ctx, owner)
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("failed to get account owner: %w", err)
	}
	if !ok {
		slog.Warn("Bank account registered for unknown owner", "bank_account_id", account.ID, "owner", owner)
		return account, nil
	}

	user.BankAccounts = append(user.BankAccounts, account.ID)
	if err := l.store.Users().Insert(ctx, user); err != nil {
		return models.BankAccount{}, fmt.Errorf("failed to link bank account to owner: %w", err)
	}

	slog.Info("Bank account registered", "bank_account_id", account.ID, "owner", owner, "bank", bank)
	return account, nil
}

// GetBankAccountByID looks up a bank account.
func (l *Ledger) GetBankAccountByID(ctx context.Context, id string) (models.BankAccount, bool, error) {
	return l.store.BankAccounts().Get(ctx, id)
}

// RemoveBankAccount deletes an account and returns it.
// The owner's account list keeps the ID; lookups skip it from then on.
func (l *Ledger) RemoveBankAccount(ctx context.Context, id string) (models.BankAccount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok, err := l.store.BankAccounts().Remove(ctx, id)
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("failed to remove bank account: %w", err)
	}
	if !ok {
		return models.BankAccount{}, NewError(KindBankAccountNotFound, id)
	}

	slog.Info("Bank account removed", "bank_account_id", id, "owner", account.Owner)
	return account, nil
}

// GetBillByID looks up a bill.
func (l *Ledger) GetBillByID(ctx context.Context, id string) (models.Bill, bool, error) {
	return l.store.Bills().Get(ctx, id)
}

// GetSplitBillParticipants returns every share of a bill in split order.
// Unlike the other lookups this one is strict: a single share that no longer
// resolves fails the whole call with BillNotFound for the bill.
func (l *Ledger) GetSplitBillParticipants(ctx context.Context, billID string) ([]models.UserBill, error) {
	bill, ok, err := l.store.Bills().Get(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	if !ok {
		return nil, NewError(KindBillNotFound, billID)
	}

	shares, err := resolver.ResolveStrict(ctx, l.store.UserBills(), bill.UserBills)
	var dangling *resolver.DanglingError
	if errors.As(err, &dangling) {
		slog.Warn("Bill references missing share", "bill_id", billID, "user_bill_id", dangling.ID)
		return nil, NewError(KindBillNotFound, billID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bill shares: %w", err)
	}
	return shares, nil
}

// SplitBill divides amount evenly among participants and records one unpaid
// share per participant, in order. The per-person amount is floored, so up to
// len(participants)-1 units of the total are not assigned to anyone.
//
// Neither owner nor participants need to be registered users. Shares are
// written before the bill; on stores that implement storage.Transactor all
// writes commit together.
func (l *Ledger) SplitBill(ctx context.Context, owner string, participants []string, amount uint64) (models.Bill, error) {
	if len(participants) == 0 {
		return models.Bill{}, NewError(KindEmptyParticipantList, owner)
	}
	share, err := calculator.EqualShare(amount, len(participants))
	if err != nil {
		return models.Bill{}, NewError(KindEmptyParticipantList, owner)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bill := models.Bill{
		ID:        l.newID(),
		Owner:     owner,
		CreatedAt: l.now().UnixNano(),
		UserBills: make([]string, 0, len(participants)),
	}
	shares := make([]models.UserBill, 0, len(participants))
	for _, participant := range participants {
		ub := models.UserBill{
			ID:     l.newID(),
			User:   participant,
			Bill:   bill.ID,
			Amount: share,
			Paid:   false,
		}
		shares = append(shares, ub)
		bill.UserBills = append(bill.UserBills, ub.ID)
	}

	write := func(ctx context.Context, s storage.Store) error {
		for _, ub := range shares {
			if err := s.UserBills().Insert(ctx, ub); err != nil {
				return fmt.Errorf("failed to store share: %w", err)
			}
		}
		if err := s.Bills().Insert(ctx, bill); err != nil {
			return fmt.Errorf("failed to store bill: %w", err)
		}
		return nil
	}

	if tx, ok := l.store.(storage.Transactor); ok {
		err = tx.WithinTx(ctx, write)
	} else {
		err = write(ctx, l.store)
	}
	if err != nil {
		return models.Bill{}, err
	}

	slog.Info("Bill split",
		"bill_id", bill.ID,
		"owner", owner,
		"participants", len(participants),
		"share", share,
		"remainder", calculator.Remainder(amount, len(participants)),
	)
	return bill, nil
}

// PayBill marks a share paid. Only the participant who owes the share may pay
// it; paying an already paid share succeeds and leaves it paid.
func (l *Ledger) PayBill(ctx context.Context, userBillID, caller string) (models.UserBill, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ub, ok, err := l.store.UserBills().Get(ctx, userBillID)
	if err != nil {
		return models.UserBill{}, fmt.Errorf("failed to get user bill: %w", err)
	}
	if !ok {
		return models.UserBill{}, NewError(KindBillNotFound, userBillID)
	}
	if ub.User != caller {
		return models.UserBill{}, NewError(KindUserNotInBill, ub.User)
	}

	ub.Paid = true
	if err := l.store.UserBills().Insert(ctx, ub); err != nil {
		return models.UserBill{}, fmt.Errorf("failed to store payment: %w", err)
	}

	slog.Info("Share paid", "user_bill_id", ub.ID, "bill_id", ub.Bill, "user_id", caller, "amount", ub.Amount)
	return ub, nil
}

// GetMyDueBills walks the user's Bills list as share IDs and returns the parent
// bill of every unpaid share whose participant is not userID. A bill appears
// once per qualifying share. Unknown users and dangling references yield fewer
// results, never a ledger error.
//
// TODO: nothing appends to User.Bills yet, and the participant filter excludes
// the caller's own shares. Settle both with product before SplitBill starts
// recording shares on participants.
func (l *Ledger) GetMyDueBills(ctx context.Context, userID string) ([]models.Bill, error) {
	user, ok, err := l.store.Users().Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !ok {
		return []models.Bill{}, nil
	}

	shares, err := resolver.Resolve(ctx, l.store.UserBills(), user.Bills)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user bills: %w", err)
	}

	var billIDs []string
	for _, ub := range shares {
		if ub.User != userID && !ub.Paid {
			billIDs = append(billIDs, ub.Bill)
		}
	}

	due, err := resolver.Resolve(ctx, l.store.Bills(), billIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve due bills: %w", err)
	}
	return due, nil
}

// GetPaymentMethodsFromUserBill follows share → bill → bill owner → owner's
// bank accounts. Any missing hop yields an empty list.
func (l *Ledger) GetPaymentMethodsFromUserBill(ctx context.Context, userBillID string) ([]models.BankAccount, error) {
	none := []models.BankAccount{}

	ub, ok, err := l.store.UserBills().Get(ctx, userBillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bill: %w", err)
	}
	if !ok {
		return none, nil
	}

	bill, ok, err := l.store.Bills().Get(ctx, ub.Bill)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	if !ok {
		return none, nil
	}

	owner, ok, err := l.store.Users().Get(ctx, bill.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill owner: %w", err)
	}
	if !ok {
		return none, nil
	}

	accounts, err := resolver.Resolve[models.BankAccount](ctx, l.store.BankAccounts(), owner.BankAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bank accounts: %w", err)
	}
	return accounts, nil
}

// Ping reports whether the underlying store is reachable.
func (l *Ledger) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}
