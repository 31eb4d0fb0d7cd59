package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
)

// DefaultThinkDelay is the artificial pause before an answer is produced.
const DefaultThinkDelay = 1500 * time.Millisecond

// AnswerQuestionInput represents the input for asking the assistant.
type AnswerQuestionInput struct {
	Question string
}

// AnswerQuestionOutput represents the assistant's reply.
type AnswerQuestionOutput struct {
	Answer string
}

// AnswerQuestionUseCase answers wallet questions through the rule table. At
// most one question is in flight at a time; a second concurrent Execute fails
// with ErrAssistantBusy instead of queueing.
type AnswerQuestionUseCase struct {
	ledger     adapter.TransactionLedger
	categories adapter.CategoryStore
	currency   string
	thinkDelay time.Duration
	now        func() time.Time
	inFlight   atomic.Bool
}

// NewAnswerQuestionUseCase creates a new AnswerQuestionUseCase instance.
// A negative thinkDelay falls back to DefaultThinkDelay; zero disables the
// pause, which tests rely on.
func NewAnswerQuestionUseCase(
	ledger adapter.TransactionLedger,
	categories adapter.CategoryStore,
	currency string,
	thinkDelay time.Duration,
) *AnswerQuestionUseCase {
	if thinkDelay < 0 {
		thinkDelay = DefaultThinkDelay
	}
	return &AnswerQuestionUseCase{
		ledger:     ledger,
		categories: categories,
		currency:   currency,
		thinkDelay: thinkDelay,
		now:        time.Now,
	}
}

// Execute answers the question. The question is lowercased before matching
// and the first matching rule wins.
func (uc *AnswerQuestionUseCase) Execute(ctx context.Context, input AnswerQuestionInput) (*AnswerQuestionOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeQuestionEmpty,
			"question cannot be empty",
			domainerror.ErrQuestionEmpty,
		)
	}

	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeAssistantBusy,
			"the assistant is still answering a previous question",
			domainerror.ErrAssistantBusy,
		)
	}
	defer uc.inFlight.Store(false)

	if uc.thinkDelay > 0 {
		select {
		case <-time.After(uc.thinkDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	balance, err := uc.ledger.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	transactions, err := uc.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	categories, err := uc.categories.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	f := facts{
		balance:      balance,
		transactions: transactions,
		categories:   categories,
		currency:     uc.currency,
		now:          uc.now(),
	}

	query := strings.ToLower(question)
	for _, r := range rules {
		if r.match(query) {
			return &AnswerQuestionOutput{Answer: r.respond(f)}, nil
		}
	}

	// Unreachable: the last rule matches everything.
	return nil, fmt.Errorf("no rule matched question")
}
