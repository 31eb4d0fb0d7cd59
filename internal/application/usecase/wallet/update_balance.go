// Package wallet contains balance and summary use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
)

// UpdateBalanceInput represents the input for a manual balance override.
type UpdateBalanceInput struct {
	Balance decimal.Decimal
}

// UpdateBalanceOutput represents the output of a balance override.
type UpdateBalanceOutput struct {
	Balance decimal.Decimal
}

// UpdateBalanceUseCase handles manual balance overrides. An override replaces
// the balance unconditionally; past transactions are not reconciled against
// the new value.
type UpdateBalanceUseCase struct {
	ledger adapter.TransactionLedger
}

// NewUpdateBalanceUseCase creates a new UpdateBalanceUseCase instance.
func NewUpdateBalanceUseCase(ledger adapter.TransactionLedger) *UpdateBalanceUseCase {
	return &UpdateBalanceUseCase{
		ledger: ledger,
	}
}

// Execute performs the balance override. Any value is accepted, including
// zero and negatives.
func (uc *UpdateBalanceUseCase) Execute(ctx context.Context, input UpdateBalanceInput) (*UpdateBalanceOutput, error) {
	if err := uc.ledger.SetBalance(ctx, input.Balance); err != nil {
		return nil, fmt.Errorf("failed to set balance: %w", err)
	}

	return &UpdateBalanceOutput{
		Balance: input.Balance,
	}, nil
}
