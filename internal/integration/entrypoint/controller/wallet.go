package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/wallet"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/dto"
)

// WalletController handles wallet summary and balance endpoints.
type WalletController struct {
	summaryUseCase *wallet.GetSummaryUseCase
	balanceUseCase *wallet.UpdateBalanceUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	summaryUseCase *wallet.GetSummaryUseCase,
	balanceUseCase *wallet.UpdateBalanceUseCase,
) *WalletController {
	return &WalletController{
		summaryUseCase: summaryUseCase,
		balanceUseCase: balanceUseCase,
	}
}

// Summary handles GET /wallet/summary requests.
func (c *WalletController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), wallet.GetSummaryInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute wallet summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// UpdateBalance handles PUT /wallet/balance requests. The binding layer is
// the only numeric guard needed: a non-numeric body fails ShouldBindJSON.
func (c *WalletController) UpdateBalance(ctx *gin.Context) {
	var req dto.UpdateBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Balance must be a valid number",
			Code:  string(domainerror.ErrCodeInvalidBalanceValue),
		})
		return
	}

	input := wallet.UpdateBalanceInput{Balance: req.Balance}
	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update balance",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{Balance: output.Balance})
}
