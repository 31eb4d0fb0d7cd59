package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// GetExpensesOverTimeInput represents the input for the expenses-over-time
// view. Now overrides the reference time when non-zero.
type GetExpensesOverTimeInput struct {
	Range TimeRange
	Now   time.Time
}

// DayBucket holds one calendar day's expense sum.
type DayBucket struct {
	Label string // e.g. "Jan 2"
	Total decimal.Decimal
}

// GetExpensesOverTimeOutput represents the per-day expense series.
type GetExpensesOverTimeOutput struct {
	Days []*DayBucket
}

// GetExpensesOverTimeUseCase groups expense transactions by calendar day.
type GetExpensesOverTimeUseCase struct {
	ledger adapter.TransactionLedger
	now    func() time.Time
}

// NewGetExpensesOverTimeUseCase creates a new GetExpensesOverTimeUseCase instance.
func NewGetExpensesOverTimeUseCase(ledger adapter.TransactionLedger) *GetExpensesOverTimeUseCase {
	return &GetExpensesOverTimeUseCase{
		ledger: ledger,
		now:    time.Now,
	}
}

// Execute computes the series. Buckets are keyed by month and day without the
// year, so "Jan 2" of different years merges into one bucket; with the 7- and
// 30-day ranges the window is too short for the collision to occur, and under
// "all" the merged bucket is the accepted behavior. Order is first occurrence
// over the most-recent-first ledger.
func (uc *GetExpensesOverTimeUseCase) Execute(ctx context.Context, input GetExpensesOverTimeInput) (*GetExpensesOverTimeOutput, error) {
	transactions, err := uc.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}

	buckets := make(map[string]*DayBucket)
	order := make([]string, 0)
	for _, txn := range filterByRange(transactions, input.Range, now) {
		if txn.Type != entity.TransactionTypeExpense {
			continue
		}
		key := txn.Date.Format("Jan 2")
		bucket, ok := buckets[key]
		if !ok {
			bucket = &DayBucket{Label: key}
			buckets[key] = bucket
			order = append(order, key)
		}
		bucket.Total = bucket.Total.Add(txn.Amount)
	}

	days := make([]*DayBucket, 0, len(order))
	for _, key := range order {
		days = append(days, buckets[key])
	}

	return &GetExpensesOverTimeOutput{
		Days: days,
	}, nil
}
