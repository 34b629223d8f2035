package dto

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyTotalsResponse holds raw per-currency period totals, rounded to 2dp.
type CurrencyTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CurrencyBalanceResponse holds raw per-currency all-time totals, rounded to 2dp.
type CurrencyBalanceResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// SummaryResponse is the period/all-time summary. All monetary values are
// rounded to 2 decimal places here, at the presentation boundary; the
// aggregation itself keeps full precision.
type SummaryResponse struct {
	BaseCurrency string         `json:"baseCurrency"`
	Period       PeriodResponse `json:"period"`

	PeriodByCurrency map[string]CurrencyTotalsResponse `json:"periodByCurrency"`
	Income           decimal.Decimal                   `json:"income"`
	Expense          decimal.Decimal                   `json:"expense"`
	Balance          decimal.Decimal                   `json:"balance"`
	TransactionCount int                               `json:"transactionCount"`

	AllTimeByCurrency map[string]CurrencyBalanceResponse `json:"allTimeByCurrency"`
	AllTimeIncome     decimal.Decimal                    `json:"allTimeIncome"`
	AllTimeExpense    decimal.Decimal                    `json:"allTimeExpense"`
	AllTimeBalance    decimal.Decimal                    `json:"allTimeBalance"`
}

// ToSummaryResponse converts a domain.Summary to its response DTO, rounding
// every monetary output to 2 decimal places.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	periodByCurrency := make(map[string]CurrencyTotalsResponse, len(s.PeriodByCurrency))
	for cur, totals := range s.PeriodByCurrency {
		periodByCurrency[cur] = CurrencyTotalsResponse{
			Income:  totals.Income.Round(2),
			Expense: totals.Expense.Round(2),
		}
	}

	allTimeByCurrency := make(map[string]CurrencyBalanceResponse, len(s.AllTimeByCurrency))
	for cur, bal := range s.AllTimeByCurrency {
		allTimeByCurrency[cur] = CurrencyBalanceResponse{
			Income:  bal.Income.Round(2),
			Expense: bal.Expense.Round(2),
			Balance: bal.Balance.Round(2),
		}
	}

	return SummaryResponse{
		BaseCurrency: s.BaseCurrency,
		Period: PeriodResponse{
			Start: FormatDate(s.PeriodStart),
			End:   FormatDate(s.PeriodEnd),
		},
		PeriodByCurrency:  periodByCurrency,
		Income:            s.PeriodIncome.Round(2),
		Expense:           s.PeriodExpense.Round(2),
		Balance:           s.PeriodBalance.Round(2),
		TransactionCount:  s.TransactionCount,
		AllTimeByCurrency: allTimeByCurrency,
		AllTimeIncome:     s.AllTimeIncome.Round(2),
		AllTimeExpense:    s.AllTimeExpense.Round(2),
		AllTimeBalance:    s.AllTimeBalance.Round(2),
	}
}
