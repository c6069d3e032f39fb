// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ensure SQLiteStore implements storage.Store and storage.Transactor
var (
	_ storage.Store      = (*SQLiteStore)(nil)
	_ storage.Transactor = (*SQLiteStore)(nil)
)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	ex executor
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
// The path ":memory:" opens a private in-memory database.
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		// Create parent directory if it doesn't exist
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps PRAGMAs and :memory: databases consistent and
	// serializes writers instead of surfacing SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, ex: executor{db: db}}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Users() storage.Collection[models.User] {
	return userCollection{ex: s.ex}
}

func (s *SQLiteStore) BankAccounts() storage.RemovableCollection[models.BankAccount] {
	return bankAccountCollection{ex: s.ex}
}

func (s *SQLiteStore) Bills() storage.Collection[models.Bill] {
	return billCollection{ex: s.ex}
}

func (s *SQLiteStore) UserBills() storage.Collection[models.UserBill] {
	return userBillCollection{ex: s.ex}
}

// WithinTx runs fn against a view of the store whose writes all land in a
// single transaction. The transaction commits only if fn returns nil.
func (s *SQLiteStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx storage.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &txStore{ex: executor{db: s.db, tx: tx}}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// txStore exposes collections bound to an open transaction.
type txStore struct {
	ex executor
}

func (t *txStore) Users() storage.Collection[models.User] {
	return userCollection{ex: t.ex}
}

func (t *txStore) BankAccounts() storage.RemovableCollection[models.BankAccount] {
	return bankAccountCollection{ex: t.ex}
}

func (t *txStore) Bills() storage.Collection[models.Bill] {
	return billCollection{ex: t.ex}
}

func (t *txStore) UserBills() storage.Collection[models.UserBill] {
	return userBillCollection{ex: t.ex}
}

// Ping succeeds while the transaction is open; the pool has a single
// connection and the transaction holds it.
func (t *txStore) Ping(context.Context) error { return nil }

// Close is a no-op; the owning SQLiteStore manages the connection.
func (t *txStore) Close() error { return nil }

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// executor routes statements to the open transaction when there is one.
type executor struct {
	db *sql.DB
	tx *sql.Tx
}

func (e executor) q() querier {
	if e.tx != nil {
		return e.tx
	}
	return e.db
}

// write runs fn inside the current transaction, or inside a new one that is
// committed when fn succeeds.
func (e executor) write(ctx context.Context, fn func(q querier) error) error {
	if e.tx != nil {
		return fn(e.tx)
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// readIDs returns the ordered ID list that query selects for owner.
func readIDs(ctx context.Context, q querier, query, owner string) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// replaceIDs rewrites the ordered ID list for owner.
func replaceIDs(ctx context.Context, q querier, deleteQuery, insertQuery, owner string, ids []string) error {
	if _, err := q.ExecContext(ctx, deleteQuery, owner); err != nil {
		return err
	}
	for i, id := range ids {
		if _, err := q.ExecContext(ctx, insertQuery, owner, i, id); err != nil {
			return err
		}
	}
	return nil
}
