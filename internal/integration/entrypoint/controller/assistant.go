package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/assistant"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/dto"
)

// AssistantController handles the rule-based assistant endpoint.
type AssistantController struct {
	answerUseCase *assistant.AnswerQuestionUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(answerUseCase *assistant.AnswerQuestionUseCase) *AssistantController {
	return &AssistantController{
		answerUseCase: answerUseCase,
	}
}

// Ask handles POST /assistant/ask requests.
func (c *AssistantController) Ask(ctx *gin.Context) {
	var req dto.AskAssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Question cannot be empty",
			Code:  string(domainerror.ErrCodeQuestionEmpty),
		})
		return
	}

	input := assistant.AnswerQuestionInput{Question: req.Question}
	output, err := c.answerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssistantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AskAssistantResponse{Answer: output.Answer})
}

// handleAssistantError maps assistant errors to HTTP responses.
func (c *AssistantController) handleAssistantError(ctx *gin.Context, err error) {
	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		statusCode := http.StatusBadRequest
		if walletErr.Code == domainerror.ErrCodeAssistantBusy {
			statusCode = http.StatusTooManyRequests
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: walletErr.Message,
			Code:  string(walletErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
