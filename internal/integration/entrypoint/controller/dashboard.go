package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/dashboard"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/dto"
)

// DashboardController handles the derived-analytics endpoints. Each view
// accepts an optional ?range= query parameter defaulting to "all".
type DashboardController struct {
	totalsUseCase    *dashboard.GetTotalsUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	overviewUseCase  *dashboard.GetMonthlyOverviewUseCase
	expensesUseCase  *dashboard.GetExpensesOverTimeUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	totalsUseCase *dashboard.GetTotalsUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	overviewUseCase *dashboard.GetMonthlyOverviewUseCase,
	expensesUseCase *dashboard.GetExpensesOverTimeUseCase,
) *DashboardController {
	return &DashboardController{
		totalsUseCase:    totalsUseCase,
		breakdownUseCase: breakdownUseCase,
		overviewUseCase:  overviewUseCase,
		expensesUseCase:  expensesUseCase,
	}
}

// Totals handles GET /dashboard/totals requests.
func (c *DashboardController) Totals(ctx *gin.Context) {
	timeRange, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.totalsUseCase.Execute(ctx.Request.Context(), dashboard.GetTotalsInput{Range: timeRange})
	if err != nil {
		c.internalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalsResponse(output))
}

// CategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	timeRange, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{Range: timeRange})
	if err != nil {
		c.internalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// MonthlyOverview handles GET /dashboard/monthly-overview requests.
func (c *DashboardController) MonthlyOverview(ctx *gin.Context) {
	timeRange, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlyOverviewInput{Range: timeRange})
	if err != nil {
		c.internalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyOverviewResponse(output))
}

// ExpensesOverTime handles GET /dashboard/expenses-over-time requests.
func (c *DashboardController) ExpensesOverTime(ctx *gin.Context) {
	timeRange, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.expensesUseCase.Execute(ctx.Request.Context(), dashboard.GetExpensesOverTimeInput{Range: timeRange})
	if err != nil {
		c.internalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpensesOverTimeResponse(output))
}

// parseRange reads and validates the ?range= query parameter, writing the
// error response itself when the value is unknown.
func (c *DashboardController) parseRange(ctx *gin.Context) (dashboard.TimeRange, bool) {
	timeRange, err := dashboard.ParseTimeRange(ctx.Query("range"))
	if err != nil {
		var walletErr *domainerror.WalletError
		if errors.As(err, &walletErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: walletErr.Message,
				Code:  string(walletErr.Code),
			})
		} else {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid time range",
			})
		}
		return "", false
	}
	return timeRange, true
}

func (c *DashboardController) internalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
