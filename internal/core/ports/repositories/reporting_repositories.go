package repositories

import (
	"context"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyTotalRow is one (month, type) aggregate as returned by the store.
type MonthlyTotalRow struct {
	Month string // "01".."12"
	Type  domain.CategoryType
	Total decimal.Decimal
}

// MemberTotalRow is one (member, type) aggregate as returned by the store.
type MemberTotalRow struct {
	Member string
	Type   domain.CategoryType
	Total  decimal.Decimal
	Count  int
}

// DailyTotalRow is one (date, type) aggregate as returned by the store.
type DailyTotalRow struct {
	Date  time.Time
	Type  domain.CategoryType
	Total decimal.Decimal
}

// ReportingRepository defines the raw aggregation queries behind the reports.
// Amounts are summed as recorded, without currency conversion.
type ReportingRepository interface {
	// GetMonthlyTotals aggregates transaction amounts per month and category
	// type for one calendar year.
	GetMonthlyTotals(ctx context.Context, year int) ([]MonthlyTotalRow, error)

	// GetCategoryTotals aggregates per category of the given type over a
	// period, ordered by total descending.
	GetCategoryTotals(ctx context.Context, categoryType domain.CategoryType, start, end time.Time) ([]domain.CategoryTotalRow, error)

	// GetMemberTotals aggregates per member and category type over a period.
	GetMemberTotals(ctx context.Context, start, end time.Time) ([]MemberTotalRow, error)

	// GetDailyTotals aggregates per day and category type over a period.
	GetDailyTotals(ctx context.Context, start, end time.Time) ([]DailyTotalRow, error)
}
