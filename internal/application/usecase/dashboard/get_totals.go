package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// GetTotalsInput represents the input for the per-type totals view.
// Now overrides the reference time when non-zero; tests use it.
type GetTotalsInput struct {
	Range TimeRange
	Now   time.Time
}

// GetTotalsOutput represents the per-type totals over the selected range.
type GetTotalsOutput struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// GetTotalsUseCase computes income and expense sums over a time range.
type GetTotalsUseCase struct {
	ledger adapter.TransactionLedger
	now    func() time.Time
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(ledger adapter.TransactionLedger) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		ledger: ledger,
		now:    time.Now,
	}
}

// Execute computes the totals. Net is income minus expense and may be negative.
func (uc *GetTotalsUseCase) Execute(ctx context.Context, input GetTotalsInput) (*GetTotalsOutput, error) {
	transactions, err := uc.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, txn := range filterByRange(transactions, input.Range, now) {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(txn.Amount)
		}
	}

	return &GetTotalsOutput{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Net:          totalIncome.Sub(totalExpense),
	}, nil
}
