package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for the category breakdown
// view. Now overrides the reference time when non-zero.
type GetCategoryBreakdownInput struct {
	Range TimeRange
	Now   time.Time
}

// CategorySlice is one category's share of expense spending in the range.
type CategorySlice struct {
	CategoryID uuid.UUID
	Name       string
	Color      string
	Total      decimal.Decimal
	Percentage decimal.Decimal
}

// GetCategoryBreakdownOutput represents the expense-only breakdown. Slices
// follow category insertion order, not descending totals.
type GetCategoryBreakdownOutput struct {
	Slices []*CategorySlice
	Total  decimal.Decimal
}

// GetCategoryBreakdownUseCase computes per-category expense sums.
type GetCategoryBreakdownUseCase struct {
	ledger     adapter.TransactionLedger
	categories adapter.CategoryStore
	now        func() time.Time
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	ledger adapter.TransactionLedger,
	categories adapter.CategoryStore,
) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		ledger:     ledger,
		categories: categories,
		now:        time.Now,
	}
}

// Execute computes the breakdown. Income transactions are ignored entirely,
// and categories whose expense sum is zero in the range are omitted.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	transactions, err := uc.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	categories, err := uc.categories.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}

	sums := make(map[uuid.UUID]decimal.Decimal, len(categories))
	total := decimal.Zero
	for _, txn := range filterByRange(transactions, input.Range, now) {
		if txn.Type != entity.TransactionTypeExpense {
			continue
		}
		sums[txn.CategoryID] = sums[txn.CategoryID].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	slices := make([]*CategorySlice, 0, len(sums))
	for _, cat := range categories {
		sum, ok := sums[cat.ID]
		if !ok || sum.IsZero() {
			continue
		}
		slice := &CategorySlice{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Color:      cat.Color,
			Total:      sum,
		}
		if total.IsPositive() {
			slice.Percentage = sum.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		}
		slices = append(slices, slice)
	}

	return &GetCategoryBreakdownOutput{
		Slices: slices,
		Total:  total,
	}, nil
}
