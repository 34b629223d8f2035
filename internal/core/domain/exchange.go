package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyExchange records a conversion event: FromAmount of FromCurrency was
// debited and ToAmount of ToCurrency credited. It is a balance-neutral
// transfer between currency buckets, never income or expense. ExchangeRate is
// the effective rate that actually happened (ToAmount/FromAmount inverted to
// base-per-unit terms), which may differ from the table rate when the caller
// overrode ToAmount.
type CurrencyExchange struct {
	ExchangeID   string          `json:"exchangeID"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	ExchangeDate time.Time       `json:"exchangeDate"` // date precision
	Member       string          `json:"member"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
}
