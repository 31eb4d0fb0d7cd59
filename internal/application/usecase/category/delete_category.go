// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion logic, including the
// referential-integrity guard: a category still referenced by any ledger
// transaction cannot be removed.
type DeleteCategoryUseCase struct {
	categories adapter.CategoryStore
	ledger     adapter.TransactionLedger
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categories adapter.CategoryStore,
	ledger adapter.TransactionLedger,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categories: categories,
		ledger:     ledger,
	}
}

// Execute performs the category deletion. The ledger is scanned at call time;
// this is a guard, not a cascading delete.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	// Find the existing category
	if _, err := uc.categories.FindCategory(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	// Reject while any transaction references the category
	transactions, err := uc.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	for _, txn := range transactions {
		if txn.CategoryID == input.CategoryID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"category is being used in transactions; remove those transactions first",
				domainerror.ErrCategoryInUse,
			)
		}
	}

	if err := uc.categories.RemoveCategory(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to remove category: %w", err)
	}

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
