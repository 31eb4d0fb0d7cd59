// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// DefaultBalance is the starting balance for a wallet with no persisted state.
var DefaultBalance = decimal.NewFromInt(5000)

// defaultCategorySeed lists the categories every fresh wallet starts with.
// Names and colors are fixed for compatibility with previously persisted data.
var defaultCategorySeed = []struct {
	name  string
	color string
	icon  string
}{
	{"Food", "#F44336", "category"},
	{"Transport", "#2196F3", "category"},
	{"Bills", "#FFC107", "category"},
	{"Shopping", "#9C27B0", "category"},
	{"Entertainment", "#4CAF50", "category"},
	{"Health", "#00BCD4", "category"},
	{"Salary", "#4CAF50", "dollar-sign"},
	{"Other Income", "#8BC34A", "dollar-sign"},
}

// DefaultCategories returns the seed category set with freshly generated ids.
func DefaultCategories() []*Category {
	categories := make([]*Category, 0, len(defaultCategorySeed))
	for _, seed := range defaultCategorySeed {
		categories = append(categories, NewCategory(seed.name, seed.color, seed.icon))
	}
	return categories
}
