// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  uuid.UUID
	Description string
	Date        time.Time // Zero value defaults to the current time.
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic. It owns the
// validation the ledger itself does not repeat: the amount must be a positive
// number and the category must exist at creation time.
type CreateTransactionUseCase struct {
	ledger     adapter.TransactionLedger
	categories adapter.CategoryStore
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	ledger adapter.TransactionLedger,
	categories adapter.CategoryStore,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		ledger:     ledger,
		categories: categories,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	// Validate amount positivity; the ledger trusts its callers on this.
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than 0",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	// Validate transaction type
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	// Validate description length
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	// Validate the referenced category exists
	category, err := uc.categories.FindCategory(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	// Create the entity and append it; the ledger adjusts the balance.
	txn := entity.NewTransaction(
		input.Amount,
		input.Type,
		input.CategoryID,
		input.Description,
		input.Date,
	)

	if err := uc.ledger.AppendTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(txn, category),
	}, nil
}
