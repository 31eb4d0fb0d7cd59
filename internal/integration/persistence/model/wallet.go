// Package model defines the persistence representations of the wallet records.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// TransactionModel is the JSON form of a ledger record.
type TransactionModel struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CategoryModel is the JSON form of a category record.
type CategoryModel struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// FromTransaction converts a domain transaction to its persistence model.
func FromTransaction(txn *entity.Transaction) TransactionModel {
	return TransactionModel{
		ID:          txn.ID,
		Amount:      txn.Amount,
		Type:        string(txn.Type),
		CategoryID:  txn.CategoryID,
		Description: txn.Description,
		Date:        txn.Date,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToTransaction converts a persistence model back to a domain transaction.
func (m TransactionModel) ToTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// FromCategory converts a domain category to its persistence model.
func FromCategory(cat *entity.Category) CategoryModel {
	return CategoryModel{
		ID:        cat.ID,
		Name:      cat.Name,
		Color:     cat.Color,
		Icon:      cat.Icon,
		CreatedAt: cat.CreatedAt,
	}
}

// ToCategory converts a persistence model back to a domain category.
func (m CategoryModel) ToCategory() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		Icon:      m.Icon,
		CreatedAt: m.CreatedAt,
	}
}
