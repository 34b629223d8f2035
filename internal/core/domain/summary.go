package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyTotals holds raw, unconverted income and expense totals for one
// currency.
type CurrencyTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CurrencyBalance holds raw all-time totals for one currency. Balance is
// income minus expense, adjusted by currency-exchange transfers in and out of
// this currency's bucket.
type CurrencyBalance struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// Summary is the result of one summary computation. Period totals convert
// each transaction at the historical rate in effect on its own date; all-time
// totals are a present-value snapshot converted at current rates. The
// asymmetry is deliberate.
type Summary struct {
	BaseCurrency string    `json:"baseCurrency"`
	PeriodStart  time.Time `json:"periodStart"`
	PeriodEnd    time.Time `json:"periodEnd"`

	// Period figures, [PeriodStart, PeriodEnd] inclusive.
	PeriodByCurrency map[string]CurrencyTotals `json:"periodByCurrency"`
	PeriodIncome     decimal.Decimal           `json:"periodIncome"`  // converted to base
	PeriodExpense    decimal.Decimal           `json:"periodExpense"` // converted to base
	PeriodBalance    decimal.Decimal           `json:"periodBalance"` // income - expense
	TransactionCount int                       `json:"transactionCount"`

	// All-time figures over the whole ledger.
	AllTimeByCurrency map[string]CurrencyBalance `json:"allTimeByCurrency"`
	AllTimeIncome     decimal.Decimal            `json:"allTimeIncome"`  // converted at current rates
	AllTimeExpense    decimal.Decimal            `json:"allTimeExpense"` // converted at current rates
	AllTimeBalance    decimal.Decimal            `json:"allTimeBalance"` // sum of per-currency balances at current rates
}
