// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// All filters are optional and AND-combined. Since is an inclusive lower
// bound on the transaction date.
type ListTransactionsInput struct {
	Search     string
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Since      *time.Time
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  uuid.UUID
	Category    *CategoryOutput
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// CategoryOutput represents category information in transaction output.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color string
	Icon  string
	Type  entity.CategoryType
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing transactions, most-recent-first.
type ListTransactionsUseCase struct {
	ledger     adapter.TransactionLedger
	categories adapter.CategoryStore
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	ledger adapter.TransactionLedger,
	categories adapter.CategoryStore,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		ledger:     ledger,
		categories: categories,
	}
}

// Execute lists the ledger in its canonical most-recent-first order, applying
// the optional search, category, type and date filters. The search term
// matches the description, the category name or the amount,
// case-insensitively.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	categories, err := uc.categories.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	search := strings.ToLower(strings.TrimSpace(input.Search))

	outputs := make([]*TransactionOutput, 0, len(transactions))
	for _, txn := range transactions {
		if input.CategoryID != nil && txn.CategoryID != *input.CategoryID {
			continue
		}
		if input.Type != nil && txn.Type != *input.Type {
			continue
		}
		if input.Since != nil && txn.Date.Before(*input.Since) {
			continue
		}

		category := byID[txn.CategoryID]
		if search != "" && !matchesSearch(txn, category, search) {
			continue
		}

		outputs = append(outputs, toTransactionOutput(txn, category))
	}

	return &ListTransactionsOutput{
		Transactions: outputs,
	}, nil
}

// matchesSearch reports whether the transaction matches the lowercased
// search term by description, category name or amount text.
func matchesSearch(txn *entity.Transaction, category *entity.Category, search string) bool {
	if strings.Contains(strings.ToLower(txn.Description), search) {
		return true
	}
	if category != nil && strings.Contains(strings.ToLower(category.Name), search) {
		return true
	}
	return strings.Contains(txn.Amount.String(), search)
}

// toTransactionOutput builds the output form of a transaction. The category
// may be nil when it is unknown to the store.
func toTransactionOutput(txn *entity.Transaction, category *entity.Category) *TransactionOutput {
	output := &TransactionOutput{
		ID:          txn.ID,
		Amount:      txn.Amount,
		Type:        txn.Type,
		CategoryID:  txn.CategoryID,
		Description: txn.Description,
		Date:        txn.Date,
		CreatedAt:   txn.CreatedAt,
	}
	if category != nil {
		output.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
			Icon:  category.Icon,
			Type:  category.Type(),
		}
	}
	return output
}
