// Package wallet contains balance and summary use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// RecentTransactionCount is how many of the latest transactions the summary includes.
const RecentTransactionCount = 5

// GetSummaryInput represents the input for the wallet summary.
type GetSummaryInput struct{}

// GetSummaryOutput represents the wallet summary: the current balance, the
// all-time per-type totals and the most recent transactions.
type GetSummaryOutput struct {
	Balance      decimal.Decimal
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Recent       []*entity.Transaction
	LowBalance   bool
}

// GetSummaryUseCase handles the wallet summary aggregation.
type GetSummaryUseCase struct {
	ledger              adapter.TransactionLedger
	lowBalanceThreshold decimal.Decimal
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(ledger adapter.TransactionLedger, lowBalanceThreshold decimal.Decimal) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		ledger:              ledger,
		lowBalanceThreshold: lowBalanceThreshold,
	}
}

// Execute computes the summary. Totals are all-time sums over the ledger and
// are independent of the balance, which may have been overridden.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, _ GetSummaryInput) (*GetSummaryOutput, error) {
	balance, err := uc.ledger.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	transactions, err := uc.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(txn.Amount)
		}
	}

	recent := transactions
	if len(recent) > RecentTransactionCount {
		recent = recent[:RecentTransactionCount]
	}

	return &GetSummaryOutput{
		Balance:      balance,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Recent:       recent,
		LowBalance:   balance.LessThan(uc.lowBalanceThreshold),
	}, nil
}
