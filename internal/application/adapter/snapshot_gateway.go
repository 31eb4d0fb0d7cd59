// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// SnapshotGateway defines the persistence contract for the three wallet
// records. Each record is keyed and written independently; there is no
// transactionality across them. A load for a record that was never written
// returns domain error ErrSnapshotMissing and the caller applies defaults.
type SnapshotGateway interface {
	// LoadBalance retrieves the persisted balance.
	LoadBalance(ctx context.Context) (decimal.Decimal, error)

	// SaveBalance persists the balance record.
	SaveBalance(ctx context.Context, balance decimal.Decimal) error

	// LoadTransactions retrieves the persisted ledger, most-recent-first.
	LoadTransactions(ctx context.Context) ([]*entity.Transaction, error)

	// SaveTransactions persists the full ledger in its canonical order.
	SaveTransactions(ctx context.Context, transactions []*entity.Transaction) error

	// LoadCategories retrieves the persisted category set in insertion order.
	LoadCategories(ctx context.Context) ([]*entity.Category, error)

	// SaveCategories persists the full category set.
	SaveCategories(ctx context.Context, categories []*entity.Category) error

	// HealthCheck reports whether the backing store is reachable.
	HealthCheck(ctx context.Context) bool
}
