// Package memory provides an in-memory implementation of the storage.Store interface.
// Data does not survive a restart; it is used by tests and the "memory" storage driver.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps each collection in its own map guarded by its own lock.
type Store struct {
	users        *collection[models.User]
	bankAccounts *collection[models.BankAccount]
	bills        *collection[models.Bill]
	userBills    *collection[models.UserBill]
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users: newCollection(func(u models.User) string { return u.ID }, func(u models.User) models.User {
			u.BankAccounts = slices.Clone(u.BankAccounts)
			u.Bills = slices.Clone(u.Bills)
			return u
		}),
		bankAccounts: newCollection(func(a models.BankAccount) string { return a.ID }, nil),
		bills: newCollection(func(b models.Bill) string { return b.ID }, func(b models.Bill) models.Bill {
			b.UserBills = slices.Clone(b.UserBills)
			return b
		}),
		userBills: newCollection(func(ub models.UserBill) string { return ub.ID }, nil),
	}
}

func (s *Store) Users() storage.Collection[models.User] { return s.users }

func (s *Store) BankAccounts() storage.RemovableCollection[models.BankAccount] {
	return s.bankAccounts
}

func (s *Store) Bills() storage.Collection[models.Bill] { return s.bills }

func (s *Store) UserBills() storage.Collection[models.UserBill] { return s.userBills }

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

// collection is a map keyed by record ID. Records are copied on the way in and
// out so callers never share slices with the stored value.
type collection[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	key     func(T) string
	clone   func(T) T
}

func newCollection[T any](key func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		records: make(map[string]T),
		key:     key,
		clone:   clone,
	}
}

func (c *collection[T]) Get(_ context.Context, id string) (T, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.records[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	return c.clone(v), true, nil
}

func (c *collection[T]) Insert(_ context.Context, record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records[c.key(record)] = c.clone(record)
	return nil
}

func (c *collection[T]) Remove(_ context.Context, id string) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.records[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	delete(c.records, id)
	return v, true, nil
}
