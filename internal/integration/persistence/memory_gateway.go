// Package persistence implements the wallet session and its snapshot gateways.
package persistence

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
)

// memoryGateway implements adapter.SnapshotGateway in process memory.
// It backs the server when Redis is unreachable and the unit tests.
type memoryGateway struct {
	mu           sync.Mutex
	balance      *decimal.Decimal
	transactions []*entity.Transaction
	categories   []*entity.Category
}

// NewMemoryGateway creates a new in-memory snapshot gateway with no records.
func NewMemoryGateway() adapter.SnapshotGateway {
	return &memoryGateway{}
}

// LoadBalance retrieves the stored balance.
func (g *memoryGateway) LoadBalance(_ context.Context) (decimal.Decimal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.balance == nil {
		return decimal.Zero, domainerror.ErrSnapshotMissing
	}
	return *g.balance, nil
}

// SaveBalance stores the balance record.
func (g *memoryGateway) SaveBalance(_ context.Context, balance decimal.Decimal) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.balance = &balance
	return nil
}

// LoadTransactions retrieves the stored ledger.
func (g *memoryGateway) LoadTransactions(_ context.Context) ([]*entity.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.transactions == nil {
		return nil, domainerror.ErrSnapshotMissing
	}
	out := make([]*entity.Transaction, len(g.transactions))
	copy(out, g.transactions)
	return out, nil
}

// SaveTransactions stores the full ledger.
func (g *memoryGateway) SaveTransactions(_ context.Context, transactions []*entity.Transaction) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.transactions = make([]*entity.Transaction, len(transactions))
	copy(g.transactions, transactions)
	return nil
}

// LoadCategories retrieves the stored category set.
func (g *memoryGateway) LoadCategories(_ context.Context) ([]*entity.Category, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.categories == nil {
		return nil, domainerror.ErrSnapshotMissing
	}
	out := make([]*entity.Category, len(g.categories))
	copy(out, g.categories)
	return out, nil
}

// SaveCategories stores the full category set.
func (g *memoryGateway) SaveCategories(_ context.Context, categories []*entity.Category) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.categories = make([]*entity.Category, len(categories))
	copy(g.categories, categories)
	return nil
}

// HealthCheck always succeeds for the in-memory gateway.
func (g *memoryGateway) HealthCheck(_ context.Context) bool {
	return true
}
