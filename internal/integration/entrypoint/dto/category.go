package dto

import (
	"time"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/transaction"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Color string `json:"color" binding:"required"`
	Icon  string `json:"icon,omitempty"`
}

// CategoryResponse represents a single category in API responses. Type is
// derived from the name, never stored.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse represents the response for listing categories,
// including the derived expense/income grouping.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Expense    []CategoryResponse `json:"expense"`
	Income     []CategoryResponse `json:"income"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Color:     cat.Color,
		Icon:      cat.Icon,
		Type:      string(cat.Type()),
		CreatedAt: cat.CreatedAt,
	}
}

// ToCategoryOutputResponse converts an embedded category output to its DTO.
func ToCategoryOutputResponse(output *transaction.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:    output.ID.String(),
		Name:  output.Name,
		Color: output.Color,
		Icon:  output.Icon,
		Type:  string(output.Type),
	}
}

// ToCategoryListResponse converts category lists to the list DTO.
func ToCategoryListResponse(all, expense, income []*entity.Category) CategoryListResponse {
	convert := func(categories []*entity.Category) []CategoryResponse {
		out := make([]CategoryResponse, len(categories))
		for i, cat := range categories {
			out[i] = ToCategoryResponse(cat)
		}
		return out
	}
	return CategoryListResponse{
		Categories: convert(all),
		Expense:    convert(expense),
		Income:     convert(income),
	}
}
