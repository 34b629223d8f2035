package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/utils/fx"
)

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// MonthlyReport returns income/expense per month for a year, zero-filled.
func (s *reportingService) MonthlyReport(ctx context.Context, year int) (map[string]domain.MonthlyTotals, error) {
	rows, err := s.reportingRepo.GetMonthlyTotals(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve monthly totals: %w", err)
	}

	monthly := make(map[string]domain.MonthlyTotals, 12)
	for m := 1; m <= 12; m++ {
		monthly[fmt.Sprintf("%02d", m)] = domain.MonthlyTotals{}
	}
	for _, row := range rows {
		totals := monthly[row.Month]
		switch row.Type {
		case domain.Income:
			totals.Income = row.Total
		case domain.Expense:
			totals.Expense = row.Total
		}
		monthly[row.Month] = totals
	}

	s.LogInfo(ctx, "Monthly report generated", slog.Int("year", year))
	return monthly, nil
}

// CategoryReport returns per-category totals of one type over a period.
func (s *reportingService) CategoryReport(ctx context.Context, categoryType domain.CategoryType, start, end time.Time) ([]domain.CategoryTotalRow, error) {
	if categoryType != domain.Income && categoryType != domain.Expense {
		return nil, apperrors.NewValidationError("type must be income or expense")
	}

	rows, err := s.reportingRepo.GetCategoryTotals(ctx, categoryType, fx.DateOnly(start), fx.DateOnly(end))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category totals: %w", err)
	}

	s.LogInfo(ctx, "Category report generated",
		slog.String("type", string(categoryType)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// MemberReport returns per-member income/expense/count over a period.
func (s *reportingService) MemberReport(ctx context.Context, start, end time.Time) (map[string]domain.MemberTotals, error) {
	rows, err := s.reportingRepo.GetMemberTotals(ctx, fx.DateOnly(start), fx.DateOnly(end))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve member totals: %w", err)
	}

	members := make(map[string]domain.MemberTotals)
	for _, row := range rows {
		totals := members[row.Member]
		switch row.Type {
		case domain.Income:
			totals.Income = row.Total
		case domain.Expense:
			totals.Expense = row.Total
		}
		totals.Count += row.Count
		members[row.Member] = totals
	}

	s.LogInfo(ctx, "Member report generated", slog.Int("member_count", len(members)))
	return members, nil
}

// TrendReport returns per-day totals over a period, zero-filled per day.
func (s *reportingService) TrendReport(ctx context.Context, start, end time.Time) (map[string]domain.DailyTotals, error) {
	start = fx.DateOnly(start)
	end = fx.DateOnly(end)
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end date must not precede start date")
	}

	rows, err := s.reportingRepo.GetDailyTotals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve daily totals: %w", err)
	}

	daily := make(map[string]domain.DailyTotals)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		daily[dto.FormatDate(day)] = domain.DailyTotals{}
	}
	for _, row := range rows {
		key := dto.FormatDate(row.Date)
		totals := daily[key]
		switch row.Type {
		case domain.Income:
			totals.Income = row.Total
		case domain.Expense:
			totals.Expense = row.Total
		}
		daily[key] = totals
	}

	s.LogInfo(ctx, "Trend report generated",
		slog.String("start", dto.FormatDate(start)),
		slog.String("end", dto.FormatDate(end)))
	return daily, nil
}
