package domain

import "github.com/shopspring/decimal"

// MonthlyTotals holds income and expense totals for one month of a year.
type MonthlyTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryTotalRow is one category's aggregate over a period.
type CategoryTotalRow struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
}

// MemberTotals aggregates one member's activity over a period. Transactions
// without a member land in the "Unassigned" bucket.
type MemberTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int             `json:"count"`
}

// DailyTotals holds income and expense totals for a single day.
type DailyTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
