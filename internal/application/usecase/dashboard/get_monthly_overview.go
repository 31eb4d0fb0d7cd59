package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// GetMonthlyOverviewInput represents the input for the monthly overview view.
// Now overrides the reference time when non-zero.
type GetMonthlyOverviewInput struct {
	Range TimeRange
	Now   time.Time
}

// MonthBucket holds one month's income and expense sums.
type MonthBucket struct {
	Label   string // e.g. "Jan 2026"
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// GetMonthlyOverviewOutput represents the per-month income/expense view.
type GetMonthlyOverviewOutput struct {
	Months []*MonthBucket
}

// GetMonthlyOverviewUseCase groups transactions by calendar month.
type GetMonthlyOverviewUseCase struct {
	ledger adapter.TransactionLedger
	now    func() time.Time
}

// NewGetMonthlyOverviewUseCase creates a new GetMonthlyOverviewUseCase instance.
func NewGetMonthlyOverviewUseCase(ledger adapter.TransactionLedger) *GetMonthlyOverviewUseCase {
	return &GetMonthlyOverviewUseCase{
		ledger: ledger,
		now:    time.Now,
	}
}

// Execute computes the overview. Buckets are keyed by month and year together,
// and appear in first-occurrence order over the most-recent-first ledger, so
// the newest month comes first. Months with no transactions are absent, not
// zero-filled.
func (uc *GetMonthlyOverviewUseCase) Execute(ctx context.Context, input GetMonthlyOverviewInput) (*GetMonthlyOverviewOutput, error) {
	transactions, err := uc.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}

	buckets := make(map[string]*MonthBucket)
	order := make([]string, 0)
	for _, txn := range filterByRange(transactions, input.Range, now) {
		key := txn.Date.Format("Jan 2006")
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthBucket{Label: key}
			buckets[key] = bucket
			order = append(order, key)
		}
		switch txn.Type {
		case entity.TransactionTypeIncome:
			bucket.Income = bucket.Income.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			bucket.Expense = bucket.Expense.Add(txn.Amount)
		}
	}

	months := make([]*MonthBucket, 0, len(order))
	for _, key := range order {
		months = append(months, buckets[key])
	}

	return &GetMonthlyOverviewOutput{
		Months: months,
	}, nil
}
