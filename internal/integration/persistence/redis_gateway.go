// Package persistence implements the wallet session and its snapshot gateways.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/persistence/model"
)

// Redis keys for the three wallet records. Each record is written
// independently; a crash between writes can leave them inconsistent,
// which the persistence contract accepts.
const (
	balanceKey      = "wallet:balance"
	transactionsKey = "wallet:transactions"
	categoriesKey   = "wallet:categories"
)

// redisGateway implements adapter.SnapshotGateway backed by a Redis instance.
type redisGateway struct {
	client *redis.Client
}

// NewRedisGateway creates a new Redis-backed snapshot gateway.
func NewRedisGateway(client *redis.Client) adapter.SnapshotGateway {
	return &redisGateway{
		client: client,
	}
}

// LoadBalance retrieves the persisted balance.
func (g *redisGateway) LoadBalance(ctx context.Context) (decimal.Decimal, error) {
	raw, err := g.client.Get(ctx, balanceKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, domainerror.ErrSnapshotMissing
		}
		return decimal.Zero, fmt.Errorf("failed to load balance: %w", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode balance: %w", err)
	}
	return balance, nil
}

// SaveBalance persists the balance record.
func (g *redisGateway) SaveBalance(ctx context.Context, balance decimal.Decimal) error {
	if err := g.client.Set(ctx, balanceKey, balance.String(), 0).Err(); err != nil {
		return fmt.Errorf("failed to save balance: %w", err)
	}
	return nil
}

// LoadTransactions retrieves the persisted ledger, most-recent-first.
func (g *redisGateway) LoadTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	raw, err := g.client.Get(ctx, transactionsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSnapshotMissing
		}
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	var models []model.TransactionModel
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	transactions := make([]*entity.Transaction, len(models))
	for i, m := range models {
		transactions[i] = m.ToTransaction()
	}
	return transactions, nil
}

// SaveTransactions persists the full ledger in its canonical order.
func (g *redisGateway) SaveTransactions(ctx context.Context, transactions []*entity.Transaction) error {
	models := make([]model.TransactionModel, len(transactions))
	for i, txn := range transactions {
		models[i] = model.FromTransaction(txn)
	}

	raw, err := json.Marshal(models)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := g.client.Set(ctx, transactionsKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// LoadCategories retrieves the persisted category set in insertion order.
func (g *redisGateway) LoadCategories(ctx context.Context) ([]*entity.Category, error) {
	raw, err := g.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSnapshotMissing
		}
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	var models []model.CategoryModel
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	categories := make([]*entity.Category, len(models))
	for i, m := range models {
		categories[i] = m.ToCategory()
	}
	return categories, nil
}

// SaveCategories persists the full category set.
func (g *redisGateway) SaveCategories(ctx context.Context, categories []*entity.Category) error {
	models := make([]model.CategoryModel, len(categories))
	for i, cat := range categories {
		models[i] = model.FromCategory(cat)
	}

	raw, err := json.Marshal(models)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	if err := g.client.Set(ctx, categoriesKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}

// HealthCheck reports whether Redis responds to a ping.
func (g *redisGateway) HealthCheck(ctx context.Context) bool {
	return g.client.Ping(ctx).Err() == nil
}
