// Package fx holds the pure currency-conversion logic shared by the summary
// aggregation and the rate chart: resolving the rate that was in effect for a
// currency on a given date.
package fx

import (
	"sort"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Resolver answers "what was one unit of this currency worth in the base
// currency on this date". It is built once per computation pass from a batch
// load of the rate history plus the current rate table, and is side-effect
// free after construction.
type Resolver struct {
	baseCurrency string
	history      map[string][]domain.RateHistoryPoint // ascending by EffectiveDate
	current      map[string]decimal.Decimal
}

// NewResolver builds a Resolver from raw history points and the current rate
// per currency. Points may arrive in any order.
func NewResolver(baseCurrency string, points []domain.RateHistoryPoint, current map[string]decimal.Decimal) *Resolver {
	history := make(map[string][]domain.RateHistoryPoint)
	for _, p := range points {
		p.EffectiveDate = DateOnly(p.EffectiveDate)
		history[p.CurrencyCode] = append(history[p.CurrencyCode], p)
	}
	for cur := range history {
		pts := history[cur]
		sort.Slice(pts, func(i, j int) bool {
			return pts[i].EffectiveDate.Before(pts[j].EffectiveDate)
		})
	}
	return &Resolver{
		baseCurrency: baseCurrency,
		history:      history,
		current:      current,
	}
}

// Resolve returns the rate in effect for currency on date: the most recent
// history point on or before the date, falling back to the current rate for
// dates preceding all history. The base currency is always exactly 1. The
// fallback prefers availability over strict historical accuracy; only a
// currency absent from both history and the current table fails.
func (r *Resolver) Resolve(currency string, date time.Time) (decimal.Decimal, error) {
	if currency == r.baseCurrency {
		return decimal.NewFromInt(1), nil
	}

	day := DateOnly(date)
	pts := r.history[currency]
	// Last point with EffectiveDate <= day.
	idx := sort.Search(len(pts), func(i int) bool {
		return pts[i].EffectiveDate.After(day)
	})
	if idx > 0 {
		return pts[idx-1].Rate, nil
	}

	if rate, ok := r.current[currency]; ok {
		return rate, nil
	}
	return decimal.Decimal{}, apperrors.NewUnknownCurrencyError(currency)
}

// Current returns the currency's present-value rate: the current table entry,
// falling back to the latest history point when the table has no row. Used
// for all-time snapshots, where the latest known rate, not a historical one,
// is wanted.
func (r *Resolver) Current(currency string) (decimal.Decimal, error) {
	if currency == r.baseCurrency {
		return decimal.NewFromInt(1), nil
	}
	if rate, ok := r.current[currency]; ok {
		return rate, nil
	}
	if pts := r.history[currency]; len(pts) > 0 {
		return pts[len(pts)-1].Rate, nil
	}
	return decimal.Decimal{}, apperrors.NewUnknownCurrencyError(currency)
}

// BaseCurrency returns the base currency this resolver converts into.
func (r *Resolver) BaseCurrency() string {
	return r.baseCurrency
}

// DateOnly truncates a timestamp to its calendar date in UTC. Rate history
// and transactions carry date precision; comparing anything finer would make
// "on or before" depend on the time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
