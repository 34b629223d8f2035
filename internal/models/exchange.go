package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyExchange is a row of the currency_exchanges table.
type CurrencyExchange struct {
	ExchangeID   string          `db:"exchange_id"`
	FromCurrency string          `db:"from_currency"`
	ToCurrency   string          `db:"to_currency"`
	FromAmount   decimal.Decimal `db:"from_amount"`
	ToAmount     decimal.Decimal `db:"to_amount"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	ExchangeDate time.Time       `db:"exchange_date"`
	Member       string          `db:"member"`
	Description  string          `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
}
