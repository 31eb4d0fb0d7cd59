// Package assistant implements the rule-based financial Q&A engine. There is
// no language model behind it: answers come from a fixed, ordered rule table
// evaluated against the wallet state.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
)

// Greeting is the canned message a fresh conversation opens with.
const Greeting = "Hello! I'm your Smart Wallet AI Assistant. How can I help you with your finances today? You can ask me questions like 'How much did I spend this week?' or 'What's my biggest expense category?'"

// facts is the wallet state a rule may consult. Transactions are in ledger
// order; categories in insertion order.
type facts struct {
	balance      decimal.Decimal
	transactions []*entity.Transaction
	categories   []*entity.Category
	currency     string
	now          time.Time
}

// rule pairs a keyword match with a response builder. The query passed to
// match is already lowercased.
type rule struct {
	match   func(query string) bool
	respond func(f facts) string
}

// rules is evaluated top to bottom and the first match wins, so a question
// containing "how much" always gets the balance answer even when it also
// mentions spending. The order is part of the observable contract. The final
// rule matches everything.
var rules = []rule{
	{
		match: func(q string) bool { return strings.Contains(q, "help") },
		respond: func(facts) string {
			return "I can help you analyze your spending, track your budget, and give you insights about your financial habits. Try asking specific questions about your transactions or budget!"
		},
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "balance") || strings.Contains(q, "how much")
		},
		respond: func(f facts) string {
			return fmt.Sprintf("Your current balance is %s.", formatMoney(f.balance, f.currency))
		},
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "spent") && strings.Contains(q, "week")
		},
		respond: func(f facts) string {
			sum := f.sumExpensesSince(f.now.AddDate(0, 0, -7))
			return fmt.Sprintf("You've spent %s in the last 7 days.", formatMoney(sum, f.currency))
		},
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "spent") && strings.Contains(q, "month")
		},
		respond: func(f facts) string {
			sum := f.sumExpensesSince(f.now.AddDate(0, 0, -30))
			return fmt.Sprintf("You've spent %s in the last 30 days.", formatMoney(sum, f.currency))
		},
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "biggest expense") || strings.Contains(q, "most spent")
		},
		respond: func(f facts) string {
			name, sum, ok := f.biggestExpenseCategory()
			if !ok {
				return "You don't have any expenses recorded yet."
			}
			return fmt.Sprintf("Your biggest expense category is %s with %s spent.", name, formatMoney(sum, f.currency))
		},
	},
	{
		match: func(q string) bool { return strings.Contains(q, "save") },
		respond: func(facts) string {
			return "Looking at your spending patterns, here are some saving tips:\n\n" +
				"1. Set a monthly budget for each category\n" +
				"2. Track your daily expenses\n" +
				"3. Identify non-essential expenses that you can reduce\n" +
				"4. Consider automating your savings with regular transfers to a savings account\n" +
				"5. Review your subscription services and cancel ones you don't use often"
		},
	},
	{
		match: func(q string) bool { return strings.Contains(q, "budget") },
		respond: func(f facts) string {
			// All-time expenses divided by three as a rough monthly average.
			budget := f.sumExpensesSince(time.Time{}).Div(decimal.NewFromInt(3))
			return fmt.Sprintf("Based on your spending history, I suggest a monthly budget of around %s. You might want to allocate this across your main expense categories.", formatMoney(budget, f.currency))
		},
	},
	{
		match: func(string) bool { return true },
		respond: func(facts) string {
			return "I'm still learning to answer this type of question. Try asking about your balance, spending patterns, or saving tips!"
		},
	},
}

// sumExpensesSince totals expense transactions dated at or after the cutoff.
// A zero cutoff means all-time.
func (f facts) sumExpensesSince(cutoff time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range f.transactions {
		if txn.Type != entity.TransactionTypeExpense {
			continue
		}
		if !cutoff.IsZero() && txn.Date.Before(cutoff) {
			continue
		}
		sum = sum.Add(txn.Amount)
	}
	return sum
}

// biggestExpenseCategory finds the category with the largest all-time expense
// sum. Ties break toward the earlier-created category. ok is false when no
// expenses exist at all.
func (f facts) biggestExpenseCategory() (name string, sum decimal.Decimal, ok bool) {
	sums := make(map[string]decimal.Decimal, len(f.categories))
	for _, txn := range f.transactions {
		if txn.Type == entity.TransactionTypeExpense {
			key := txn.CategoryID.String()
			sums[key] = sums[key].Add(txn.Amount)
		}
	}

	best := decimal.Zero
	for _, cat := range f.categories {
		catSum, present := sums[cat.ID.String()]
		if !present || catSum.IsZero() {
			continue
		}
		if catSum.GreaterThan(best) {
			best = catSum
			name = cat.Name
			ok = true
		}
	}
	return name, best, ok
}

// formatMoney renders an amount with two fixed decimals and the currency
// code, e.g. "1250.50 MAD".
func formatMoney(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}
