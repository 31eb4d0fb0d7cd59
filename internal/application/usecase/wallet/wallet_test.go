// Package wallet contains balance and summary use cases.
package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/persistence"
)

func newTestSession(t *testing.T) *persistence.Session {
	t.Helper()
	session, err := persistence.NewSession(context.Background(), persistence.NewMemoryGateway(), entity.DefaultBalance)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

func appendExpense(t *testing.T, session *persistence.Session, amount int64, description string) *entity.Transaction {
	t.Helper()
	txn := entity.NewTransaction(decimal.NewFromInt(amount), entity.TransactionTypeExpense, uuid.New(), description, time.Time{})
	if err := session.AppendTransaction(context.Background(), txn); err != nil {
		t.Fatalf("failed to append expense: %v", err)
	}
	return txn
}

func appendIncome(t *testing.T, session *persistence.Session, amount int64, description string) *entity.Transaction {
	t.Helper()
	txn := entity.NewTransaction(decimal.NewFromInt(amount), entity.TransactionTypeIncome, uuid.New(), description, time.Time{})
	if err := session.AppendTransaction(context.Background(), txn); err != nil {
		t.Fatalf("failed to append income: %v", err)
	}
	return txn
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	useCase := NewGetSummaryUseCase(session, decimal.NewFromInt(100))

	t.Run("empty wallet", func(t *testing.T) {
		output, err := useCase.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Balance.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected balance 5000, got %s", output.Balance)
		}
		if !output.TotalIncome.IsZero() || !output.TotalExpense.IsZero() {
			t.Error("expected zero totals for an empty ledger")
		}
		if len(output.Recent) != 0 {
			t.Errorf("expected no recent transactions, got %d", len(output.Recent))
		}
		if output.LowBalance {
			t.Error("expected LowBalance false at 5000")
		}
	})

	t.Run("totals follow the ledger, not the balance", func(t *testing.T) {
		appendExpense(t, session, 200, "rent share")
		appendIncome(t, session, 3500, "salary")
		_ = session.SetBalance(ctx, decimal.NewFromInt(50))

		output, err := useCase.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalExpense.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected total expense 200, got %s", output.TotalExpense)
		}
		if !output.TotalIncome.Equal(decimal.NewFromInt(3500)) {
			t.Errorf("expected total income 3500, got %s", output.TotalIncome)
		}
		if !output.Balance.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected overridden balance 50, got %s", output.Balance)
		}
	})

	t.Run("flags low balance against the threshold", func(t *testing.T) {
		output, err := useCase.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.LowBalance {
			t.Error("expected LowBalance true at 50 with threshold 100")
		}
	})

	t.Run("recent is capped at five, newest first", func(t *testing.T) {
		for i := int64(1); i <= 6; i++ {
			appendExpense(t, session, i, "bulk")
		}

		output, err := useCase.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Recent) != RecentTransactionCount {
			t.Fatalf("expected %d recent transactions, got %d", RecentTransactionCount, len(output.Recent))
		}
		if !output.Recent[0].Amount.Equal(decimal.NewFromInt(6)) {
			t.Errorf("expected the newest transaction first, got amount %s", output.Recent[0].Amount)
		}
	})
}

func TestUpdateBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	useCase := NewUpdateBalanceUseCase(session)

	tests := []struct {
		name  string
		value decimal.Decimal
	}{
		{"positive override", decimal.RequireFromString("1234.56")},
		{"zero override", decimal.Zero},
		{"negative override", decimal.NewFromInt(-250)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := useCase.Execute(ctx, UpdateBalanceInput{Balance: tt.value})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !output.Balance.Equal(tt.value) {
				t.Errorf("expected %s, got %s", tt.value, output.Balance)
			}
			stored, _ := session.Balance(ctx)
			if !stored.Equal(tt.value) {
				t.Errorf("expected stored balance %s, got %s", tt.value, stored)
			}
		})
	}
}
