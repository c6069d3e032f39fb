// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// Collection is a durable mapping from opaque ID to record.
// Lookups report absence through the boolean instead of an error; the error
// return is reserved for backend failures.
type Collection[T any] interface {
	// Get returns the record stored under id and whether it exists.
	Get(ctx context.Context, id string) (T, bool, error)

	// Insert stores the record under its own ID, replacing any previous value.
	Insert(ctx context.Context, record T) error
}

// RemovableCollection is a Collection that also supports deletion by ID.
type RemovableCollection[T any] interface {
	Collection[T]

	// Remove deletes the record stored under id and returns it.
	// The boolean is false when nothing was stored under id.
	Remove(ctx context.Context, id string) (T, bool, error)
}

// Store groups the four independent collections used by the ledger.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the ledger.
type Store interface {
	Users() Collection[models.User]
	BankAccounts() RemovableCollection[models.BankAccount]
	Bills() Collection[models.Bill]
	UserBills() Collection[models.UserBill]

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

// Transactor is implemented by stores that can apply writes across several
// collections atomically. fn receives a Store whose collections write inside
// the transaction; returning an error rolls every write back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
