package services

import (
	"context"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
)

// ReportingSvcFacade defines the dashboard breakdown reports. All figures are
// raw recorded amounts without currency conversion.
type ReportingSvcFacade interface {
	// MonthlyReport returns income/expense per month ("01".."12") for a year,
	// zero-filled for months without activity.
	MonthlyReport(ctx context.Context, year int) (map[string]domain.MonthlyTotals, error)

	// CategoryReport returns per-category totals of one type over a period,
	// ordered by total descending.
	CategoryReport(ctx context.Context, categoryType domain.CategoryType, start, end time.Time) ([]domain.CategoryTotalRow, error)

	// MemberReport returns per-member totals over a period.
	MemberReport(ctx context.Context, start, end time.Time) (map[string]domain.MemberTotals, error)

	// TrendReport returns per-day totals over a period, zero-filled for days
	// without activity, keyed by YYYY-MM-DD.
	TrendReport(ctx context.Context, start, end time.Time) (map[string]domain.DailyTotals, error)
}
