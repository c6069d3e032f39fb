package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

func TestStoreCopiesIDLists(t *testing.T) {
	ctx := context.Background()
	s := New()

	user := models.User{ID: "u1", Username: "alice", BankAccounts: []string{"a1"}, Bills: []string{}}
	require.NoError(t, s.Users().Insert(ctx, user))

	// Mutating the caller's slice must not reach the stored record.
	user.BankAccounts[0] = "changed"

	got, ok, err := s.Users().Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a1"}, got.BankAccounts)

	got.BankAccounts = append(got.BankAccounts, "a2")
	again, _, err := s.Users().Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, again.BankAccounts)
}

func TestStoreInsertReplaces(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.UserBills().Insert(ctx, models.UserBill{ID: "ub", User: "bob", Amount: 10}))
	require.NoError(t, s.UserBills().Insert(ctx, models.UserBill{ID: "ub", User: "bob", Amount: 10, Paid: true}))

	got, ok, err := s.UserBills().Get(ctx, "ub")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Paid)
}

func TestStoreRemove(t *testing.T) {
	ctx := context.Background()
	s := New()

	account := models.BankAccount{ID: "a1", Owner: "u1", Bank: "Bank", AccountNumber: "42"}
	require.NoError(t, s.BankAccounts().Insert(ctx, account))

	removed, ok, err := s.BankAccounts().Remove(ctx, "a1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, account, removed)

	_, ok, err = s.BankAccounts().Get(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.BankAccounts().Remove(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := New()

	bill, ok, err := s.Bills().Get(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, models.Bill{}, bill)

	assert.NoError(t, s.Ping(ctx))
	assert.NoError(t, s.Close())
}
