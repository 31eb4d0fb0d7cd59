package dto

import (
	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/dashboard"
)

// TotalsResponse represents the per-type totals view.
type TotalsResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

// CategorySliceResponse is one slice of the category breakdown.
type CategorySliceResponse struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryBreakdownResponse represents the expense breakdown view.
type CategoryBreakdownResponse struct {
	Breakdown []CategorySliceResponse `json:"breakdown"`
	Total     decimal.Decimal         `json:"total"`
}

// MonthBucketResponse is one month of the monthly overview.
type MonthBucketResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyOverviewResponse represents the monthly overview view.
type MonthlyOverviewResponse struct {
	Months []MonthBucketResponse `json:"months"`
}

// DayBucketResponse is one day of the expenses-over-time series.
type DayBucketResponse struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// ExpensesOverTimeResponse represents the expenses-over-time view.
type ExpensesOverTimeResponse struct {
	Days []DayBucketResponse `json:"days"`
}

// ToTotalsResponse converts the totals use case output to its DTO.
func ToTotalsResponse(output *dashboard.GetTotalsOutput) TotalsResponse {
	return TotalsResponse{
		TotalIncome:  output.TotalIncome,
		TotalExpense: output.TotalExpense,
		Net:          output.Net,
	}
}

// ToCategoryBreakdownResponse converts the breakdown use case output to its DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	breakdown := make([]CategorySliceResponse, len(output.Slices))
	for i, slice := range output.Slices {
		breakdown[i] = CategorySliceResponse{
			CategoryID: slice.CategoryID.String(),
			Name:       slice.Name,
			Color:      slice.Color,
			Total:      slice.Total,
			Percentage: slice.Percentage,
		}
	}
	return CategoryBreakdownResponse{
		Breakdown: breakdown,
		Total:     output.Total,
	}
}

// ToMonthlyOverviewResponse converts the overview use case output to its DTO.
func ToMonthlyOverviewResponse(output *dashboard.GetMonthlyOverviewOutput) MonthlyOverviewResponse {
	months := make([]MonthBucketResponse, len(output.Months))
	for i, bucket := range output.Months {
		months[i] = MonthBucketResponse{
			Month:   bucket.Label,
			Income:  bucket.Income,
			Expense: bucket.Expense,
		}
	}
	return MonthlyOverviewResponse{Months: months}
}

// ToExpensesOverTimeResponse converts the series use case output to its DTO.
func ToExpensesOverTimeResponse(output *dashboard.GetExpensesOverTimeOutput) ExpensesOverTimeResponse {
	days := make([]DayBucketResponse, len(output.Days))
	for i, bucket := range output.Days {
		days[i] = DayBucketResponse{
			Day:   bucket.Label,
			Total: bucket.Total,
		}
	}
	return ExpensesOverTimeResponse{Days: days}
}
