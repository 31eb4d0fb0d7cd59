// Package persistence implements the wallet session and its snapshot gateways.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
)

// Session holds the three wallet records for the lifetime of the process and
// implements adapter.TransactionLedger and adapter.CategoryStore.
//
// All mutations happen under a single mutex: the HTTP server is genuinely
// concurrent, and a single-writer lock keeps the balance consistent with the
// ledger without per-record coordination. Every mutation writes the changed
// record through the snapshot gateway; if the write fails the in-memory
// change is rolled back so no partial mutation is ever observable.
type Session struct {
	mu           sync.Mutex
	balance      decimal.Decimal
	transactions []*entity.Transaction
	categories   []*entity.Category
	gateway      adapter.SnapshotGateway
}

// NewSession loads the three records through the gateway, seeding each
// missing record with its default: the starting balance, an empty ledger,
// the eight default categories. Seeded records are written back so a fresh
// store converges to a fully populated snapshot. A zero defaultBalance is
// taken literally; callers wanting the stock default pass
// entity.DefaultBalance.
func NewSession(ctx context.Context, gateway adapter.SnapshotGateway, defaultBalance decimal.Decimal) (*Session, error) {
	s := &Session{
		gateway: gateway,
	}

	balance, err := gateway.LoadBalance(ctx)
	switch {
	case err == nil:
		s.balance = balance
	case errors.Is(err, domainerror.ErrSnapshotMissing):
		s.balance = defaultBalance
		if err := gateway.SaveBalance(ctx, s.balance); err != nil {
			return nil, fmt.Errorf("failed to seed balance: %w", err)
		}
	default:
		return nil, err
	}

	transactions, err := gateway.LoadTransactions(ctx)
	switch {
	case err == nil:
		s.transactions = transactions
	case errors.Is(err, domainerror.ErrSnapshotMissing):
		s.transactions = []*entity.Transaction{}
		if err := gateway.SaveTransactions(ctx, s.transactions); err != nil {
			return nil, fmt.Errorf("failed to seed transactions: %w", err)
		}
	default:
		return nil, err
	}

	categories, err := gateway.LoadCategories(ctx)
	switch {
	case err == nil:
		s.categories = categories
	case errors.Is(err, domainerror.ErrSnapshotMissing):
		s.categories = entity.DefaultCategories()
		if err := gateway.SaveCategories(ctx, s.categories); err != nil {
			return nil, fmt.Errorf("failed to seed categories: %w", err)
		}
	default:
		return nil, err
	}

	return s, nil
}

// AppendTransaction prepends the record to the ledger (most-recent-first)
// and applies its balance effect. The session does not validate the record;
// the use case layer rejects non-positive amounts and unknown categories.
func (s *Session) AppendTransaction(ctx context.Context, txn *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append([]*entity.Transaction{txn}, s.transactions...)
	newBalance := s.balance.Add(txn.SignedAmount())

	if err := s.gateway.SaveTransactions(ctx, s.transactions); err != nil {
		s.transactions = s.transactions[1:]
		return err
	}

	oldBalance := s.balance
	s.balance = newBalance
	if err := s.gateway.SaveBalance(ctx, s.balance); err != nil {
		// Balance and ledger can diverge in the store here; the contract
		// accepts that, but the in-memory view stays consistent.
		s.balance = oldBalance
		s.transactions = s.transactions[1:]
		return err
	}
	return nil
}

// RemoveTransaction reverses the record's balance effect using its
// pre-removal data, then removes it. A missing id is a silent no-op.
func (s *Session) RemoveTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, txn := range s.transactions {
		if txn.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, nil
	}

	removed := s.transactions[index]
	oldTransactions := s.transactions
	oldBalance := s.balance

	s.balance = s.balance.Sub(removed.SignedAmount())
	s.transactions = append(append([]*entity.Transaction{}, s.transactions[:index]...), s.transactions[index+1:]...)

	if err := s.gateway.SaveTransactions(ctx, s.transactions); err != nil {
		s.transactions = oldTransactions
		s.balance = oldBalance
		return nil, err
	}
	if err := s.gateway.SaveBalance(ctx, s.balance); err != nil {
		s.transactions = oldTransactions
		s.balance = oldBalance
		return nil, err
	}
	return removed, nil
}

// Transactions returns a copy of the ledger, most-recent-first.
func (s *Session) Transactions(_ context.Context) ([]*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

// Balance returns the current balance.
func (s *Session) Balance(_ context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balance, nil
}

// SetBalance overrides the balance without touching the ledger. Overrides
// intentionally break delete-invertibility; they model a manual correction.
func (s *Session) SetBalance(ctx context.Context, value decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	oldBalance := s.balance
	s.balance = value
	if err := s.gateway.SaveBalance(ctx, s.balance); err != nil {
		s.balance = oldBalance
		return err
	}
	return nil
}

// AppendCategory adds a category to the end of the set.
func (s *Session) AppendCategory(ctx context.Context, category *entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append(s.categories, category)
	if err := s.gateway.SaveCategories(ctx, s.categories); err != nil {
		s.categories = s.categories[:len(s.categories)-1]
		return err
	}
	return nil
}

// RemoveCategory removes a category by id. Missing ids are a no-op.
func (s *Session) RemoveCategory(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, cat := range s.categories {
		if cat.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	oldCategories := s.categories
	s.categories = append(append([]*entity.Category{}, s.categories[:index]...), s.categories[index+1:]...)
	if err := s.gateway.SaveCategories(ctx, s.categories); err != nil {
		s.categories = oldCategories
		return err
	}
	return nil
}

// Categories returns a copy of the category set in insertion order.
func (s *Session) Categories(_ context.Context) ([]*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// FindCategory retrieves a category by id.
func (s *Session) FindCategory(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range s.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

// CategoryNameExists reports whether a category with the given name
// (trimmed, case-insensitive) already exists.
func (s *Session) CategoryNameExists(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, cat := range s.categories {
		if strings.ToLower(strings.TrimSpace(cat.Name)) == needle {
			return true, nil
		}
	}
	return false, nil
}
