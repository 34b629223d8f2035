package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the current conversion rate for a single currency, expressed
// as units of the base currency per 1 unit of CurrencyCode. Exactly one row
// exists per currency; it always reflects the latest known rate.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"` // 3-letter uppercase code, e.g. "USD"
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// RateHistoryPoint is one point in a currency's rate time series. At most one
// point exists per currency per calendar date; updating the same date
// overwrites the point.
type RateHistoryPoint struct {
	CurrencyCode  string          `json:"currencyCode"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate time.Time       `json:"effectiveDate"` // date precision
}

// RateChartPoint is the forward-filled rate of every charted currency on a
// single day.
type RateChartPoint struct {
	Date  string                     `json:"date"` // YYYY-MM-DD
	Rates map[string]decimal.Decimal `json:"rates"`
}

// RateChart is a derived, read-only time series of daily rates for charting.
type RateChart struct {
	Currencies  []string         `json:"currencies"`
	Points      []RateChartPoint `json:"points"`
	PeriodStart time.Time        `json:"periodStart"`
	PeriodEnd   time.Time        `json:"periodEnd"`
}
