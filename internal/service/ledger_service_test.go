package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

// setupTestServer creates a test server backed by a temporary SQLite database
func setupTestServer(t *testing.T) (apiconnect.LedgerServiceClient, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	svc := NewLedgerService(ledger.New(store))
	path, handler := apiconnect.NewLedgerServiceHandler(svc,
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	client := apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return client, cleanup
}

func createUser(t *testing.T, client apiconnect.LedgerServiceClient, name string) *api.User {
	t.Helper()
	resp, err := client.CreateUser(context.Background(), connect.NewRequest(&api.CreateUserRequest{
		Username: name,
		Email:    name + "@example.com",
	}))
	if err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
	return resp.Msg.User
}

func TestSplitPayAndPaymentMethods(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	alice := createUser(t, client, "alice")
	bob := createUser(t, client, "bob")
	carol := createUser(t, client, "carol")

	acct, err := client.RegisterBankAccount(ctx, connect.NewRequest(&api.RegisterBankAccountRequest{
		Owner:         alice.ID,
		Bank:          "First Bank",
		AccountNumber: "123-456",
	}))
	if err != nil {
		t.Fatalf("RegisterBankAccount failed: %v", err)
	}
	x := acct.Msg.BankAccount

	split, err := client.SplitBill(ctx, connect.NewRequest(&api.SplitBillRequest{
		Owner:        alice.ID,
		Participants: []string{bob.ID, carol.ID},
		Amount:       100,
	}))
	if err != nil {
		t.Fatalf("SplitBill failed: %v", err)
	}
	bill := split.Msg.Bill
	if len(bill.UserBills) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(bill.UserBills))
	}
	if bill.Owner != alice.ID {
		t.Errorf("bill owner: expected %s, got %s", alice.ID, bill.Owner)
	}
	if bill.CreatedAt == 0 {
		t.Error("expected CreatedAt to be set")
	}

	participants, err := client.GetSplitBillParticipant(ctx, connect.NewRequest(&api.GetSplitBillParticipantRequest{BillID: bill.ID}))
	if err != nil {
		t.Fatalf("GetSplitBillParticipant failed: %v", err)
	}
	for i, want := range []string{bob.ID, carol.ID} {
		share := participants.Msg.UserBills[i]
		if share.User != want {
			t.Errorf("share %d user: expected %s, got %s", i, want, share.User)
		}
		if share.Amount != 50 {
			t.Errorf("share %d amount: expected 50, got %d", i, share.Amount)
		}
		if share.Paid {
			t.Errorf("share %d should start unpaid", i)
		}
	}

	bobShare := bill.UserBills[0]
	paid, err := client.PayBill(ctx, connect.NewRequest(&api.PayBillRequest{UserBillID: bobShare, UserID: bob.ID}))
	if err != nil {
		t.Fatalf("PayBill failed: %v", err)
	}
	if !paid.Msg.UserBill.Paid {
		t.Error("expected share to be paid")
	}

	methods, err := client.GetPaymentMethodsFromUserBill(ctx, connect.NewRequest(&api.GetPaymentMethodsFromUserBillRequest{UserBillID: bobShare}))
	if err != nil {
		t.Fatalf("GetPaymentMethodsFromUserBill failed: %v", err)
	}
	if len(methods.Msg.BankAccounts) != 1 || methods.Msg.BankAccounts[0].ID != x.ID {
		t.Errorf("expected payment methods [%s], got %+v", x.ID, methods.Msg.BankAccounts)
	}
}

func TestSplitBill_RemainderDropped(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	split, err := client.SplitBill(ctx, connect.NewRequest(&api.SplitBillRequest{
		Owner:        "a",
		Participants: []string{"b", "c", "d"},
		Amount:       100,
	}))
	if err != nil {
		t.Fatalf("SplitBill failed: %v", err)
	}

	participants, err := client.GetSplitBillParticipant(ctx, connect.NewRequest(&api.GetSplitBillParticipantRequest{BillID: split.Msg.Bill.ID}))
	if err != nil {
		t.Fatalf("GetSplitBillParticipant failed: %v", err)
	}

	var total uint64
	for _, share := range participants.Msg.UserBills {
		if share.Amount != 33 {
			t.Errorf("expected share of 33, got %d", share.Amount)
		}
		total += share.Amount
	}
	if total != 99 {
		t.Errorf("expected shares to total 99, got %d", total)
	}
}

func TestSplitBill_EmptyParticipants(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := client.SplitBill(context.Background(), connect.NewRequest(&api.SplitBillRequest{
		Owner:  "a",
		Amount: 100,
	}))
	if err == nil {
		t.Fatal("expected error for empty participant list")
	}
	if code := connect.CodeOf(err); code != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", code)
	}
	if !errors.Is(FromConnectError(err), ledger.ErrEmptyParticipantList) {
		t.Errorf("expected EmptyParticipantList, got %v", FromConnectError(err))
	}
}

func TestPayBill_Errors(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	split, err := client.SplitBill(ctx, connect.NewRequest(&api.SplitBillRequest{
		Owner:        "alice",
		Participants: []string{"bob"},
		Amount:       10,
	}))
	if err != nil {
		t.Fatalf("SplitBill failed: %v", err)
	}
	share := split.Msg.Bill.UserBills[0]

	t.Run("wrong caller", func(t *testing.T) {
		_, err := client.PayBill(ctx, connect.NewRequest(&api.PayBillRequest{UserBillID: share, UserID: "alice"}))
		if code := connect.CodeOf(err); code != connect.CodePermissionDenied {
			t.Fatalf("expected PermissionDenied, got %v (%v)", code, err)
		}
		le, ok := ledger.AsError(FromConnectError(err))
		if !ok {
			t.Fatalf("expected ledger error, got %v", err)
		}
		if le.Kind != ledger.KindUserNotInBill || le.ID != "bob" {
			t.Errorf("expected UserNotInBill(bob), got %s(%s)", le.Kind, le.ID)
		}

		participants, err := client.GetSplitBillParticipant(ctx, connect.NewRequest(&api.GetSplitBillParticipantRequest{BillID: split.Msg.Bill.ID}))
		if err != nil {
			t.Fatalf("GetSplitBillParticipant failed: %v", err)
		}
		if participants.Msg.UserBills[0].Paid {
			t.Error("share must stay unpaid after rejected payment")
		}
	})

	t.Run("unknown share", func(t *testing.T) {
		_, err := client.PayBill(ctx, connect.NewRequest(&api.PayBillRequest{UserBillID: "missing", UserID: "bob"}))
		if code := connect.CodeOf(err); code != connect.CodeNotFound {
			t.Fatalf("expected NotFound, got %v", code)
		}
		le, ok := ledger.AsError(FromConnectError(err))
		if !ok || le.Kind != ledger.KindBillNotFound || le.ID != "missing" {
			t.Errorf("expected BillNotFound(missing), got %v", FromConnectError(err))
		}
	})

	t.Run("repeat payment", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp, err := client.PayBill(ctx, connect.NewRequest(&api.PayBillRequest{UserBillID: share, UserID: "bob"}))
			if err != nil {
				t.Fatalf("PayBill attempt %d failed: %v", i+1, err)
			}
			if !resp.Msg.UserBill.Paid {
				t.Errorf("attempt %d: expected paid", i+1)
			}
		}
	})
}

func TestLookups(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("unknown ids report not found", func(t *testing.T) {
		user, err := client.GetUserById(ctx, connect.NewRequest(&api.GetUserByIdRequest{ID: "nope"}))
		if err != nil {
			t.Fatalf("GetUserById failed: %v", err)
		}
		if user.Msg.Found || user.Msg.User != nil {
			t.Errorf("expected no user, got %+v", user.Msg)
		}

		bill, err := client.GetBillById(ctx, connect.NewRequest(&api.GetBillByIdRequest{ID: "nope"}))
		if err != nil {
			t.Fatalf("GetBillById failed: %v", err)
		}
		if bill.Msg.Found {
			t.Error("expected no bill")
		}

		acct, err := client.GetBankAccountById(ctx, connect.NewRequest(&api.GetBankAccountByIdRequest{ID: "nope"}))
		if err != nil {
			t.Fatalf("GetBankAccountById failed: %v", err)
		}
		if acct.Msg.Found {
			t.Error("expected no bank account")
		}
	})

	t.Run("participants of unknown bill", func(t *testing.T) {
		_, err := client.GetSplitBillParticipant(ctx, connect.NewRequest(&api.GetSplitBillParticipantRequest{BillID: "nope"}))
		if !errors.Is(FromConnectError(err), ledger.ErrBillNotFound) {
			t.Errorf("expected BillNotFound, got %v", err)
		}
	})

	t.Run("registered user round trip", func(t *testing.T) {
		alice := createUser(t, client, "alice")
		got, err := client.GetUserById(ctx, connect.NewRequest(&api.GetUserByIdRequest{ID: alice.ID}))
		if err != nil {
			t.Fatalf("GetUserById failed: %v", err)
		}
		if !got.Msg.Found || got.Msg.User.Username != "alice" || got.Msg.User.Email != "alice@example.com" {
			t.Errorf("unexpected user: %+v", got.Msg.User)
		}
		if got.Msg.User.BankAccounts == nil || got.Msg.User.Bills == nil {
			t.Error("expected empty lists to be encoded as []")
		}
	})

	t.Run("due bills never error", func(t *testing.T) {
		resp, err := client.GetMyDueBill(ctx, connect.NewRequest(&api.GetMyDueBillRequest{UserID: "ghost"}))
		if err != nil {
			t.Fatalf("GetMyDueBill failed: %v", err)
		}
		if len(resp.Msg.Bills) != 0 {
			t.Errorf("expected no due bills, got %d", len(resp.Msg.Bills))
		}
	})

	t.Run("payment methods for unknown share", func(t *testing.T) {
		resp, err := client.GetPaymentMethodsFromUserBill(ctx, connect.NewRequest(&api.GetPaymentMethodsFromUserBillRequest{UserBillID: "nope"}))
		if err != nil {
			t.Fatalf("GetPaymentMethodsFromUserBill failed: %v", err)
		}
		if len(resp.Msg.BankAccounts) != 0 {
			t.Errorf("expected no payment methods, got %d", len(resp.Msg.BankAccounts))
		}
	})
}

func TestRemoveBankAccount(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	_, err := client.RemoveBankAccount(ctx, connect.NewRequest(&api.RemoveBankAccountRequest{ID: "nope"}))
	if code := connect.CodeOf(err); code != connect.CodeNotFound {
		t.Fatalf("expected NotFound, got %v", code)
	}
	le, ok := ledger.AsError(FromConnectError(err))
	if !ok || le.Kind != ledger.KindBankAccountNotFound || le.ID != "nope" {
		t.Errorf("expected BankAccountNotFound(nope), got %v", FromConnectError(err))
	}

	alice := createUser(t, client, "alice")
	reg, err := client.RegisterBankAccount(ctx, connect.NewRequest(&api.RegisterBankAccountRequest{
		Owner: alice.ID, Bank: "Bank", AccountNumber: "1",
	}))
	if err != nil {
		t.Fatalf("RegisterBankAccount failed: %v", err)
	}

	removed, err := client.RemoveBankAccount(ctx, connect.NewRequest(&api.RemoveBankAccountRequest{ID: reg.Msg.BankAccount.ID}))
	if err != nil {
		t.Fatalf("RemoveBankAccount failed: %v", err)
	}
	if *removed.Msg.BankAccount != *reg.Msg.BankAccount {
		t.Errorf("removed account mismatch: got %+v, want %+v", removed.Msg.BankAccount, reg.Msg.BankAccount)
	}

	got, err := client.GetBankAccountById(ctx, connect.NewRequest(&api.GetBankAccountByIdRequest{ID: reg.Msg.BankAccount.ID}))
	if err != nil {
		t.Fatalf("GetBankAccountById failed: %v", err)
	}
	if got.Msg.Found {
		t.Error("expected account to be gone")
	}
}

func TestFromConnectErrorPassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	if FromConnectError(plain) != plain {
		t.Error("expected non-connect error to pass through")
	}

	internal := connect.NewError(connect.CodeInternal, plain)
	if FromConnectError(internal) != error(internal) {
		t.Error("expected connect error without metadata to pass through")
	}

	if got := toConnectError(plain).Code(); got != connect.CodeInternal {
		t.Errorf("expected Internal for non-ledger error, got %v", got)
	}
}
