package dto

import (
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/wallet"
	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// UpdateBalanceRequest represents the request body for a balance override.
type UpdateBalanceRequest struct {
	Balance decimal.Decimal `json:"balance" binding:"required"`
}

// BalanceResponse represents the balance after an override.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// SummaryTransaction is a compact transaction view used in the summary.
type SummaryTransaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// SummaryResponse represents the wallet summary.
type SummaryResponse struct {
	Balance      decimal.Decimal      `json:"balance"`
	TotalIncome  decimal.Decimal      `json:"total_income"`
	TotalExpense decimal.Decimal      `json:"total_expense"`
	Recent       []SummaryTransaction `json:"recent_transactions"`
	LowBalance   bool                 `json:"low_balance"`
}

// ToSummaryResponse converts the summary use case output to its DTO.
func ToSummaryResponse(output *wallet.GetSummaryOutput) SummaryResponse {
	recent := make([]SummaryTransaction, len(output.Recent))
	for i, txn := range output.Recent {
		recent[i] = toSummaryTransaction(txn)
	}
	return SummaryResponse{
		Balance:      output.Balance,
		TotalIncome:  output.TotalIncome,
		TotalExpense: output.TotalExpense,
		Recent:       recent,
		LowBalance:   output.LowBalance,
	}
}

func toSummaryTransaction(txn *entity.Transaction) SummaryTransaction {
	return SummaryTransaction{
		ID:          txn.ID.String(),
		Amount:      txn.Amount,
		Type:        string(txn.Type),
		CategoryID:  txn.CategoryID.String(),
		Description: txn.Description,
		Date:        txn.Date.Format("2006-01-02"),
	}
}
