package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table. It holds the currently
// effective rate of one currency against the base currency.
type ExchangeRate struct {
	CurrencyCode string          `db:"currency_code"`
	Rate         decimal.Decimal `db:"rate"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// RateHistoryPoint is a row of the exchange_rate_history table. One row per
// currency and effective date.
type RateHistoryPoint struct {
	CurrencyCode  string          `db:"currency_code"`
	Rate          decimal.Decimal `db:"rate"`
	EffectiveDate time.Time       `db:"effective_date"`
}
