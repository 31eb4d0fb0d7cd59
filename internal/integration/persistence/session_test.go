// Package persistence implements the wallet session and its snapshot gateways.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// failingGateway wraps the in-memory gateway and fails saves on demand.
type failingGateway struct {
	inner            *memoryGateway
	failTransactions bool
	failBalance      bool
}

var errSaveFailed = errors.New("save failed")

func newFailingGateway() *failingGateway {
	return &failingGateway{inner: &memoryGateway{}}
}

func (g *failingGateway) LoadBalance(ctx context.Context) (decimal.Decimal, error) {
	return g.inner.LoadBalance(ctx)
}

func (g *failingGateway) SaveBalance(ctx context.Context, balance decimal.Decimal) error {
	if g.failBalance {
		return errSaveFailed
	}
	return g.inner.SaveBalance(ctx, balance)
}

func (g *failingGateway) LoadTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	return g.inner.LoadTransactions(ctx)
}

func (g *failingGateway) SaveTransactions(ctx context.Context, transactions []*entity.Transaction) error {
	if g.failTransactions {
		return errSaveFailed
	}
	return g.inner.SaveTransactions(ctx, transactions)
}

func (g *failingGateway) LoadCategories(ctx context.Context) ([]*entity.Category, error) {
	return g.inner.LoadCategories(ctx)
}

func (g *failingGateway) SaveCategories(ctx context.Context, categories []*entity.Category) error {
	return g.inner.SaveCategories(ctx, categories)
}

func (g *failingGateway) HealthCheck(ctx context.Context) bool {
	return true
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	session, err := NewSession(context.Background(), NewMemoryGateway(), entity.DefaultBalance)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

func expenseTransaction(amount int64, categoryID uuid.UUID) *entity.Transaction {
	return entity.NewTransaction(decimal.NewFromInt(amount), entity.TransactionTypeExpense, categoryID, "", time.Time{})
}

func incomeTransaction(amount int64, categoryID uuid.UUID) *entity.Transaction {
	return entity.NewTransaction(decimal.NewFromInt(amount), entity.TransactionTypeIncome, categoryID, "", time.Time{})
}

func TestNewSession_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	gateway := NewMemoryGateway()

	session, err := NewSession(ctx, gateway, entity.DefaultBalance)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	t.Run("balance starts at the default", func(t *testing.T) {
		balance, _ := session.Balance(ctx)
		if !balance.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected balance 5000, got %s", balance)
		}
	})

	t.Run("ledger starts empty", func(t *testing.T) {
		transactions, _ := session.Transactions(ctx)
		if len(transactions) != 0 {
			t.Errorf("expected empty ledger, got %d entries", len(transactions))
		}
	})

	t.Run("eight default categories", func(t *testing.T) {
		categories, _ := session.Categories(ctx)
		if len(categories) != 8 {
			t.Errorf("expected 8 categories, got %d", len(categories))
		}
	})

	t.Run("seeds are written back to the store", func(t *testing.T) {
		balance, err := gateway.LoadBalance(ctx)
		if err != nil {
			t.Fatalf("expected seeded balance in store, got error: %v", err)
		}
		if !balance.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected stored balance 5000, got %s", balance)
		}
	})

	t.Run("second session reuses persisted categories", func(t *testing.T) {
		first, _ := session.Categories(ctx)

		again, err := NewSession(ctx, gateway, entity.DefaultBalance)
		if err != nil {
			t.Fatalf("failed to create second session: %v", err)
		}
		second, _ := again.Categories(ctx)

		if len(second) != len(first) || second[0].ID != first[0].ID {
			t.Error("expected the second session to load the same persisted categories")
		}
	})
}

func TestSession_BalanceFollowsLedger(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	categoryID := uuid.New()

	// 5000 - 25 = 4975
	if err := session.AppendTransaction(ctx, expenseTransaction(25, categoryID)); err != nil {
		t.Fatalf("failed to append expense: %v", err)
	}
	balance, _ := session.Balance(ctx)
	if !balance.Equal(decimal.NewFromInt(4975)) {
		t.Errorf("expected 4975 after expense, got %s", balance)
	}

	// 4975 + 3500 = 8475
	if err := session.AppendTransaction(ctx, incomeTransaction(3500, categoryID)); err != nil {
		t.Fatalf("failed to append income: %v", err)
	}
	balance, _ = session.Balance(ctx)
	if !balance.Equal(decimal.NewFromInt(8475)) {
		t.Errorf("expected 8475 after income, got %s", balance)
	}

	// Removing the expense reverses it: 8475 + 25 = 8500
	transactions, _ := session.Transactions(ctx)
	var expenseID uuid.UUID
	for _, txn := range transactions {
		if txn.Type == entity.TransactionTypeExpense {
			expenseID = txn.ID
		}
	}
	removed, err := session.RemoveTransaction(ctx, expenseID)
	if err != nil {
		t.Fatalf("failed to remove expense: %v", err)
	}
	if removed == nil {
		t.Fatal("expected removed transaction, got nil")
	}
	balance, _ = session.Balance(ctx)
	if !balance.Equal(decimal.NewFromInt(8500)) {
		t.Errorf("expected 8500 after removal, got %s", balance)
	}
}

func TestSession_LedgerOrder(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	categoryID := uuid.New()

	first := expenseTransaction(10, categoryID)
	second := expenseTransaction(20, categoryID)
	_ = session.AppendTransaction(ctx, first)
	_ = session.AppendTransaction(ctx, second)

	transactions, _ := session.Transactions(ctx)
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	if transactions[0].ID != second.ID {
		t.Error("expected the most recently added transaction first")
	}
}

func TestSession_RemoveTransaction(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	categoryID := uuid.New()

	t.Run("removing an unknown id is a no-op", func(t *testing.T) {
		removed, err := session.RemoveTransaction(ctx, uuid.New())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if removed != nil {
			t.Error("expected nil for unknown id")
		}
		balance, _ := session.Balance(ctx)
		if !balance.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected balance unchanged at 5000, got %s", balance)
		}
	})

	t.Run("removal reverses using pre-removal data after an override", func(t *testing.T) {
		txn := expenseTransaction(100, categoryID)
		_ = session.AppendTransaction(ctx, txn) // 4900
		_ = session.SetBalance(ctx, decimal.NewFromInt(1000))

		if _, err := session.RemoveTransaction(ctx, txn.ID); err != nil {
			t.Fatalf("failed to remove transaction: %v", err)
		}

		// The removal adds the expense back onto the overridden balance; it
		// does not restore the pre-override 5000.
		balance, _ := session.Balance(ctx)
		if !balance.Equal(decimal.NewFromInt(1100)) {
			t.Errorf("expected 1100, got %s", balance)
		}
	})
}

func TestSession_RollbackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	gateway := newFailingGateway()
	session, err := NewSession(ctx, gateway, entity.DefaultBalance)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	categoryID := uuid.New()

	t.Run("append rolls back when the ledger save fails", func(t *testing.T) {
		gateway.failTransactions = true
		defer func() { gateway.failTransactions = false }()

		if err := session.AppendTransaction(ctx, expenseTransaction(50, categoryID)); err == nil {
			t.Fatal("expected append to fail")
		}

		transactions, _ := session.Transactions(ctx)
		if len(transactions) != 0 {
			t.Errorf("expected ledger unchanged, got %d entries", len(transactions))
		}
		balance, _ := session.Balance(ctx)
		if !balance.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected balance unchanged at 5000, got %s", balance)
		}
	})

	t.Run("append rolls back when the balance save fails", func(t *testing.T) {
		gateway.failBalance = true
		defer func() { gateway.failBalance = false }()

		if err := session.AppendTransaction(ctx, expenseTransaction(50, categoryID)); err == nil {
			t.Fatal("expected append to fail")
		}

		transactions, _ := session.Transactions(ctx)
		if len(transactions) != 0 {
			t.Errorf("expected ledger unchanged, got %d entries", len(transactions))
		}
		balance, _ := session.Balance(ctx)
		if !balance.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected balance unchanged at 5000, got %s", balance)
		}
	})

	t.Run("override rolls back when the balance save fails", func(t *testing.T) {
		gateway.failBalance = true
		defer func() { gateway.failBalance = false }()

		if err := session.SetBalance(ctx, decimal.NewFromInt(1)); err == nil {
			t.Fatal("expected override to fail")
		}
		balance, _ := session.Balance(ctx)
		if !balance.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected balance unchanged at 5000, got %s", balance)
		}
	})
}

func TestSession_CategoryNameExists(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"exact match", "Food", true},
		{"case-insensitive match", "fOOd", true},
		{"surrounding whitespace ignored", "  Food  ", true},
		{"unknown name", "Groceries", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := session.CategoryNameExists(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists != tt.expected {
				t.Errorf("CategoryNameExists(%q) = %v, want %v", tt.input, exists, tt.expected)
			}
		})
	}
}
