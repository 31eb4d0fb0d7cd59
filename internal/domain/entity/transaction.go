// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single financial event in the Savvy Wallet ledger.
// Amount is always positive; the sign of its balance effect is carried by Type.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Type        TransactionType
	CategoryID  uuid.UUID
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity with a fresh id.
// A zero date defaults to the current time.
func NewTransaction(
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID uuid.UUID,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		Description: description,
		Date:        date,
		CreatedAt:   now,
	}
}

// SignedAmount returns the balance effect of the transaction:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
