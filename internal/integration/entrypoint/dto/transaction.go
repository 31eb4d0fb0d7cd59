package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amounts arrive as JSON strings ("42.50") to keep them exact.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Description string          `json:"description,omitempty"`
	Date        *time.Time      `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string            `json:"id"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        string            `json:"type"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	CreatedAt   time.Time         `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction use case output to its DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	resp := TransactionResponse{
		ID:          output.ID.String(),
		Amount:      output.Amount,
		Type:        string(output.Type),
		CategoryID:  output.CategoryID.String(),
		Description: output.Description,
		Date:        output.Date,
		CreatedAt:   output.CreatedAt,
	}
	if output.Category != nil {
		cat := ToCategoryOutputResponse(output.Category)
		resp.Category = &cat
	}
	return resp
}

// ToTransactionListResponse converts the list use case output to its DTO.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
