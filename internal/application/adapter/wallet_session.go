// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// TransactionLedger is the mutation and read API over the transaction log
// and its balance accumulator. Implementations keep the two consistent:
// appending adjusts the balance by the signed amount and removing reverses
// it using the pre-removal record. The ledger performs no input validation;
// callers reject malformed amounts and unknown categories first.
type TransactionLedger interface {
	// AppendTransaction prepends a record (most-recent-first order) and
	// applies its balance effect.
	AppendTransaction(ctx context.Context, txn *entity.Transaction) error

	// RemoveTransaction reverses the record's balance effect and removes it.
	// A missing id is a silent no-op returning (nil, nil).
	RemoveTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// Transactions returns a copy of the ledger, most-recent-first.
	Transactions(ctx context.Context) ([]*entity.Transaction, error)

	// Balance returns the current balance.
	Balance(ctx context.Context) (decimal.Decimal, error)

	// SetBalance overrides the balance without touching the ledger.
	SetBalance(ctx context.Context, value decimal.Decimal) error
}

// CategoryStore is the mutation and read API over the category set.
// Referential-integrity and uniqueness checks live in the use cases.
type CategoryStore interface {
	// AppendCategory adds a category to the end of the set.
	AppendCategory(ctx context.Context, category *entity.Category) error

	// RemoveCategory removes a category by id. Missing ids are a no-op.
	RemoveCategory(ctx context.Context, id uuid.UUID) error

	// Categories returns a copy of the category set in insertion order.
	Categories(ctx context.Context) ([]*entity.Category, error)

	// FindCategory retrieves a category by id.
	FindCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// CategoryNameExists reports whether a category with the given name
	// (trimmed, case-insensitive) already exists.
	CategoryNameExists(ctx context.Context, name string) (bool, error)
}
