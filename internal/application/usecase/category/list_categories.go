// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesOutput holds all categories in insertion order plus the same
// set split by derived type, preserving relative order within each group.
type ListCategoriesOutput struct {
	Categories []*entity.Category
	Expense    []*entity.Category
	Income     []*entity.Category
}

// ListCategoriesUseCase handles listing categories.
type ListCategoriesUseCase struct {
	categories adapter.CategoryStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categories adapter.CategoryStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categories: categories,
	}
}

// Execute lists the categories. The type split is recomputed from names on
// every call; renames are impossible, so the grouping is stable.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, _ ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categories.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	output := &ListCategoriesOutput{
		Categories: categories,
	}
	for _, cat := range categories {
		switch cat.Type() {
		case entity.CategoryTypeIncome:
			output.Income = append(output.Income, cat)
		default:
			output.Expense = append(output.Expense, cat)
		}
	}

	return output, nil
}
