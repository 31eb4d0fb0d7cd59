// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
// Deleted is false when the id was not present; that case is not an error.
type DeleteTransactionOutput struct {
	Deleted bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	ledger adapter.TransactionLedger
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(ledger adapter.TransactionLedger) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		ledger: ledger,
	}
}

// Execute performs the transaction deletion. Removal is idempotent: deleting
// an id that is absent from the ledger succeeds without changing anything.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	removed, err := uc.ledger.RemoveTransaction(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove transaction: %w", err)
	}

	return &DeleteTransactionOutput{
		Deleted: removed != nil,
	}, nil
}
