// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the derived classification of a category
// (expense or income). It is never stored; see DeriveCategoryType.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryIcon is the icon assigned to user-created categories.
const DefaultCategoryIcon = "category"

// Category represents a transaction category in the Savvy Wallet system.
// Categories are immutable once created.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity with a fresh id.
func NewCategory(name, color, icon string) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
}

// Type returns the derived classification of the category.
func (c *Category) Type() CategoryType {
	return DeriveCategoryType(c.Name)
}

// DeriveCategoryType classifies a category as income or expense from its
// name: a name that case-insensitively contains "income" or equals "salary"
// is income, everything else is expense.
//
// The heuristic is part of the observable contract and is preserved with its
// known quirks: "Salary Income" matches both rules harmlessly, while a name
// like "Low Income Housing" is misclassified as income.
func DeriveCategoryType(name string) CategoryType {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "income") || lower == "salary" {
		return CategoryTypeIncome
	}
	return CategoryTypeExpense
}
