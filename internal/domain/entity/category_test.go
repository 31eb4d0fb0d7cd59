// Package entity defines the core business entities for the domain layer.
package entity

import "testing"

func TestDeriveCategoryType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CategoryType
	}{
		{"salary is income", "Salary", CategoryTypeIncome},
		{"salary lowercase is income", "salary", CategoryTypeIncome},
		{"salary uppercase is income", "SALARY", CategoryTypeIncome},
		{"other income is income", "Other Income", CategoryTypeIncome},
		{"income substring matches", "Rental income", CategoryTypeIncome},
		{"income substring matches regardless of meaning", "Low Income Housing", CategoryTypeIncome},
		{"food is expense", "Food", CategoryTypeExpense},
		{"transport is expense", "Transport", CategoryTypeExpense},
		{"salaries does not equal salary", "Salaries", CategoryTypeExpense},
		{"empty name is expense", "", CategoryTypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveCategoryType(tt.input); got != tt.expected {
				t.Errorf("DeriveCategoryType(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCategoryType(t *testing.T) {
	t.Run("type is derived from the current name", func(t *testing.T) {
		cat := NewCategory("Salary", "#4CAF50", "dollar-sign")
		if cat.Type() != CategoryTypeIncome {
			t.Errorf("expected income, got %s", cat.Type())
		}
	})
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()

	t.Run("eight seed categories", func(t *testing.T) {
		if len(categories) != 8 {
			t.Fatalf("expected 8 default categories, got %d", len(categories))
		}
	})

	t.Run("six expense and two income", func(t *testing.T) {
		var income, expense int
		for _, cat := range categories {
			switch cat.Type() {
			case CategoryTypeIncome:
				income++
			default:
				expense++
			}
		}
		if expense != 6 || income != 2 {
			t.Errorf("expected 6 expense / 2 income, got %d / %d", expense, income)
		}
	})

	t.Run("ids are unique per call", func(t *testing.T) {
		again := DefaultCategories()
		if categories[0].ID == again[0].ID {
			t.Error("expected fresh ids on each call")
		}
	})
}
