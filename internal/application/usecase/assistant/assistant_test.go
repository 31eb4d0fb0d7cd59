// Package assistant implements the rule-based financial Q&A engine.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/persistence"
)

func newTestSession(t *testing.T) *persistence.Session {
	t.Helper()
	session, err := persistence.NewSession(context.Background(), persistence.NewMemoryGateway(), entity.DefaultBalance)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

// newTestUseCase builds an assistant with no think delay so tests run fast.
func newTestUseCase(t *testing.T, session *persistence.Session) *AnswerQuestionUseCase {
	t.Helper()
	return NewAnswerQuestionUseCase(session, session, "MAD", 0)
}

func ask(t *testing.T, uc *AnswerQuestionUseCase, question string) string {
	t.Helper()
	output, err := uc.Execute(context.Background(), AnswerQuestionInput{Question: question})
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", question, err)
	}
	return output.Answer
}

func TestAnswerQuestionUseCase_Rules(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	uc := newTestUseCase(t, session)

	categories, _ := session.Categories(ctx)
	food := categories[0]
	transport := categories[1]

	now := time.Now().UTC()
	seed := []*entity.Transaction{
		entity.NewTransaction(decimal.NewFromInt(30), entity.TransactionTypeExpense, food.ID, "lunch", now.AddDate(0, 0, -2)),
		entity.NewTransaction(decimal.NewFromInt(90), entity.TransactionTypeExpense, transport.ID, "old taxi", now.AddDate(0, 0, -20)),
	}
	for _, txn := range seed {
		if err := session.AppendTransaction(ctx, txn); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
	}
	// Balance: 5000 - 30 - 90 = 4880

	t.Run("help", func(t *testing.T) {
		answer := ask(t, uc, "What can you help me with?")
		if !strings.Contains(answer, "analyze your spending") {
			t.Errorf("unexpected help answer: %q", answer)
		}
	})

	t.Run("balance", func(t *testing.T) {
		answer := ask(t, uc, "what is my balance?")
		if answer != "Your current balance is 4880.00 MAD." {
			t.Errorf("unexpected balance answer: %q", answer)
		}
	})

	t.Run("how much also answers with the balance", func(t *testing.T) {
		answer := ask(t, uc, "How much do I have?")
		if !strings.Contains(answer, "4880.00 MAD") {
			t.Errorf("unexpected answer: %q", answer)
		}
	})

	t.Run("spent this week counts only the last 7 days", func(t *testing.T) {
		answer := ask(t, uc, "Total spent this week?")
		if answer != "You've spent 30.00 MAD in the last 7 days." {
			t.Errorf("unexpected weekly answer: %q", answer)
		}
	})

	t.Run("spent this month counts the last 30 days", func(t *testing.T) {
		answer := ask(t, uc, "Total spent this month?")
		if answer != "You've spent 120.00 MAD in the last 30 days." {
			t.Errorf("unexpected monthly answer: %q", answer)
		}
	})

	t.Run("how much beats spent-week in the rule order", func(t *testing.T) {
		// "how much" is checked before "spent"+"week", so this phrasing gets
		// the balance answer. The table order is part of the contract.
		answer := ask(t, uc, "how much have I spent this week?")
		if !strings.Contains(answer, "Your current balance is") {
			t.Errorf("expected the balance rule to win, got %q", answer)
		}
	})

	t.Run("biggest expense", func(t *testing.T) {
		answer := ask(t, uc, "What's my biggest expense category?")
		if answer != "Your biggest expense category is Transport with 90.00 MAD spent." {
			t.Errorf("unexpected biggest expense answer: %q", answer)
		}
	})

	t.Run("save tips", func(t *testing.T) {
		answer := ask(t, uc, "How can I save money?")
		if !strings.Contains(answer, "saving tips") || !strings.Contains(answer, "5. Review your subscription services") {
			t.Errorf("unexpected save answer: %q", answer)
		}
	})

	t.Run("budget is a third of all-time expenses", func(t *testing.T) {
		answer := ask(t, uc, "Suggest a budget for me")
		if !strings.Contains(answer, "40.00 MAD") {
			t.Errorf("expected suggested budget 40.00 MAD, got %q", answer)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		answer := ask(t, uc, "Do you like jazz?")
		if !strings.Contains(answer, "I'm still learning") {
			t.Errorf("unexpected fallback answer: %q", answer)
		}
	})
}

func TestAnswerQuestionUseCase_EmptyWallet(t *testing.T) {
	session := newTestSession(t)
	uc := newTestUseCase(t, session)

	t.Run("weekly spend is zero", func(t *testing.T) {
		answer := ask(t, uc, "spent this week?")
		if answer != "You've spent 0.00 MAD in the last 7 days." {
			t.Errorf("unexpected answer: %q", answer)
		}
	})

	t.Run("no biggest expense yet", func(t *testing.T) {
		answer := ask(t, uc, "biggest expense?")
		if answer != "You don't have any expenses recorded yet." {
			t.Errorf("unexpected answer: %q", answer)
		}
	})
}

func TestAnswerQuestionUseCase_Validation(t *testing.T) {
	session := newTestSession(t)
	uc := newTestUseCase(t, session)

	t.Run("blank question is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), AnswerQuestionInput{Question: "   "})

		var walletErr *domainerror.WalletError
		if !errors.As(err, &walletErr) || walletErr.Code != domainerror.ErrCodeQuestionEmpty {
			t.Errorf("expected empty question error, got %v", err)
		}
	})
}

func TestAnswerQuestionUseCase_SingleFlight(t *testing.T) {
	session := newTestSession(t)
	// A real delay keeps the first question in flight while the second lands.
	uc := NewAnswerQuestionUseCase(session, session, "MAD", 100*time.Millisecond)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), AnswerQuestionInput{Question: "help"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var busy, ok int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		var walletErr *domainerror.WalletError
		if errors.As(err, &walletErr) && walletErr.Code == domainerror.ErrCodeAssistantBusy {
			busy++
		}
	}
	if ok != 1 || busy != 1 {
		t.Errorf("expected exactly one answer and one busy rejection, got %d ok / %d busy", ok, busy)
	}

	t.Run("slot frees after the answer", func(t *testing.T) {
		if _, err := uc.Execute(context.Background(), AnswerQuestionInput{Question: "help"}); err != nil {
			t.Errorf("expected the assistant to be free again, got %v", err)
		}
	})

	t.Run("cancellation frees the slot", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := uc.Execute(ctx, AnswerQuestionInput{Question: "help"}); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if _, err := uc.Execute(context.Background(), AnswerQuestionInput{Question: "help"}); err != nil {
			t.Errorf("expected the assistant to be free after cancellation, got %v", err)
		}
	})
}
