// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Color string
	Icon  string // Optional, defaults to entity.DefaultCategoryIcon.
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categories adapter.CategoryStore
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categories adapter.CategoryStore) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categories: categories,
	}
}

// Execute performs the category creation. Names are trimmed and compared
// case-insensitively against the existing set; a collision leaves the store
// untouched.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)

	// Validate name
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name cannot be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	// Validate color format
	if !hexColorRegex.MatchString(input.Color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}

	// Apply the default icon (Application layer responsibility)
	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	// Check name uniqueness
	exists, err := uc.categories.CategoryNameExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(name, input.Color, icon)

	if err := uc.categories.AppendCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to append category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
