package dto

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyTotalsResponse is one month's income/expense in the monthly report.
type MonthlyTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyReportResponse maps month numbers ("01".."12") to totals.
type MonthlyReportResponse struct {
	Year int                              `json:"year"`
	Data map[string]MonthlyTotalsResponse `json:"data"`
}

// ToMonthlyReportResponse converts monthly totals to their response DTO.
func ToMonthlyReportResponse(year int, data map[string]domain.MonthlyTotals) MonthlyReportResponse {
	out := make(map[string]MonthlyTotalsResponse, len(data))
	for month, totals := range data {
		out[month] = MonthlyTotalsResponse{
			Income:  totals.Income.Round(2),
			Expense: totals.Expense.Round(2),
		}
	}
	return MonthlyReportResponse{Year: year, Data: out}
}

// CategoryTotalResponse is one category's aggregate in the category report.
type CategoryTotalResponse struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
}

// CategoryReportResponse is the per-category breakdown over a period.
type CategoryReportResponse struct {
	Type   string                  `json:"type"`
	Data   []CategoryTotalResponse `json:"data"`
	Period PeriodResponse          `json:"period"`
}

// ToCategoryReportResponse converts category totals to their response DTO.
func ToCategoryReportResponse(categoryType domain.CategoryType, rows []domain.CategoryTotalRow, start, end string) CategoryReportResponse {
	data := make([]CategoryTotalResponse, len(rows))
	for i, r := range rows {
		data[i] = CategoryTotalResponse{
			CategoryID: r.CategoryID,
			Name:       r.Name,
			Icon:       r.Icon,
			Color:      r.Color,
			Total:      r.Total.Round(2),
			Count:      r.Count,
		}
	}
	return CategoryReportResponse{
		Type:   string(categoryType),
		Data:   data,
		Period: PeriodResponse{Start: start, End: end},
	}
}

// MemberTotalsResponse is one member's aggregate in the member report.
type MemberTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int             `json:"count"`
}

// MemberReportResponse maps member names to totals; transactions without a
// member land under "Unassigned".
type MemberReportResponse struct {
	Data   map[string]MemberTotalsResponse `json:"data"`
	Period PeriodResponse                  `json:"period"`
}

// ToMemberReportResponse converts member totals to their response DTO.
func ToMemberReportResponse(data map[string]domain.MemberTotals, start, end string) MemberReportResponse {
	out := make(map[string]MemberTotalsResponse, len(data))
	for member, totals := range data {
		out[member] = MemberTotalsResponse{
			Income:  totals.Income.Round(2),
			Expense: totals.Expense.Round(2),
			Count:   totals.Count,
		}
	}
	return MemberReportResponse{
		Data:   out,
		Period: PeriodResponse{Start: start, End: end},
	}
}

// DailyTotalsResponse is one day's income/expense in the trend report.
type DailyTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// TrendReportResponse maps YYYY-MM-DD dates to totals.
type TrendReportResponse struct {
	Data   map[string]DailyTotalsResponse `json:"data"`
	Period PeriodResponse                 `json:"period"`
}

// ToTrendReportResponse converts daily totals to their response DTO.
func ToTrendReportResponse(data map[string]domain.DailyTotals, start, end string) TrendReportResponse {
	out := make(map[string]DailyTotalsResponse, len(data))
	for date, totals := range data {
		out[date] = DailyTotalsResponse{
			Income:  totals.Income.Round(2),
			Expense: totals.Expense.Round(2),
		}
	}
	return TrendReportResponse{
		Data:   out,
		Period: PeriodResponse{Start: start, End: end},
	}
}
