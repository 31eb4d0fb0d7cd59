// Package dashboard contains the derived-analytics use cases. Every view is
// recomputed from the ledger on demand; nothing here is cached or persisted.
package dashboard

import (
	"time"

	"github.com/slaxamine/savvy-gemini-wallet/internal/domain/entity"
	domainerror "github.com/slaxamine/savvy-gemini-wallet/internal/domain/error"
)

// TimeRange selects the window a dashboard view aggregates over.
type TimeRange string

const (
	TimeRangeAll    TimeRange = "all"
	TimeRange7Days  TimeRange = "7days"
	TimeRange30Days TimeRange = "30days"
)

// ParseTimeRange validates a raw range value. The empty string defaults to
// TimeRangeAll.
func ParseTimeRange(raw string) (TimeRange, error) {
	switch TimeRange(raw) {
	case "":
		return TimeRangeAll, nil
	case TimeRangeAll, TimeRange7Days, TimeRange30Days:
		return TimeRange(raw), nil
	default:
		return "", domainerror.NewWalletError(
			domainerror.ErrCodeInvalidTimeRange,
			"time range must be one of 'all', '7days' or '30days'",
			domainerror.ErrInvalidTimeRange,
		)
	}
}

// Cutoff returns the inclusive lower bound of the range relative to now. The
// second return is false for TimeRangeAll, which has no bound. The bound is
// now minus N whole days, not a calendar-day boundary.
func (r TimeRange) Cutoff(now time.Time) (time.Time, bool) {
	switch r {
	case TimeRange7Days:
		return now.AddDate(0, 0, -7), true
	case TimeRange30Days:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// filterByRange returns the transactions whose date falls inside the range.
// Order is preserved. A future-dated transaction is always included.
func filterByRange(transactions []*entity.Transaction, r TimeRange, now time.Time) []*entity.Transaction {
	cutoff, ok := r.Cutoff(now)
	if !ok {
		return transactions
	}
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if !txn.Date.Before(cutoff) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}
