package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/utils/fx"
	"github.com/shopspring/decimal"
)

// rateService implements the RateSvcFacade interface.
type rateService struct {
	BaseService
	rateRepo     portsrepo.RateRepositoryFacade
	baseCurrency string
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, baseCurrency string) portssvc.RateSvcFacade {
	return &rateService{
		rateRepo:     rateRepo,
		baseCurrency: baseCurrency,
	}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// ListRates returns the current rate of every known currency.
func (s *rateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	return rates, nil
}

// UpdateRate upserts the current rate for a currency and records the matching
// history point. An existing history point for the same date is overwritten,
// not duplicated.
func (s *rateService) UpdateRate(ctx context.Context, req dto.UpdateRateRequest) (*domain.ExchangeRate, error) {
	currency := strings.ToUpper(req.CurrencyCode)

	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("rate must be positive")
	}

	effectiveDate := fx.DateOnly(time.Now())
	if req.EffectiveDate != "" {
		parsed, err := dto.ParseDate(req.EffectiveDate)
		if err != nil {
			return nil, apperrors.NewValidationError("effective date must be YYYY-MM-DD")
		}
		effectiveDate = fx.DateOnly(parsed)
	}

	rate := domain.ExchangeRate{
		CurrencyCode: currency,
		Rate:         req.Rate,
		UpdatedAt:    time.Now(),
	}

	point := domain.RateHistoryPoint{
		CurrencyCode:  currency,
		Rate:          req.Rate,
		EffectiveDate: effectiveDate,
	}
	if err := s.rateRepo.UpsertRateWithHistory(ctx, rate, point); err != nil {
		return nil, fmt.Errorf("failed to upsert rate: %w", err)
	}

	s.LogInfo(ctx, "Rate updated",
		slog.String("currency", currency),
		slog.String("rate", req.Rate.String()),
		slog.String("effective_date", dto.FormatDate(effectiveDate)),
	)
	return &rate, nil
}

// GetHistoricalRate resolves the rate in effect for a currency on a date.
func (s *rateService) GetHistoricalRate(ctx context.Context, currencyCode string, date time.Time) (decimal.Decimal, error) {
	currency := strings.ToUpper(currencyCode)
	if currency == s.baseCurrency {
		return decimal.NewFromInt(1), nil
	}

	point, err := s.rateRepo.FindHistoryPointOnOrBefore(ctx, currency, fx.DateOnly(date))
	if err == nil {
		return point.Rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Decimal{}, fmt.Errorf("failed to look up rate history: %w", err)
	}

	// No history at or before the date; best known rate is the current one.
	current, err := s.rateRepo.FindRate(ctx, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Decimal{}, apperrors.NewUnknownCurrencyError(currency)
		}
		return decimal.Decimal{}, fmt.Errorf("failed to look up current rate: %w", err)
	}
	return current.Rate, nil
}

// GetRateChart builds the per-day forward-filled rate series for every
// non-base currency, reusing the resolver's most-recent-on-or-before
// semantics per day.
func (s *rateService) GetRateChart(ctx context.Context, start, end time.Time) (*domain.RateChart, error) {
	start = fx.DateOnly(start)
	end = fx.DateOnly(end)
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end date must not precede start date")
	}

	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for chart: %w", err)
	}

	currencies := make([]string, 0, len(rates))
	current := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		current[r.CurrencyCode] = r.Rate
		if r.CurrencyCode != s.baseCurrency {
			currencies = append(currencies, r.CurrencyCode)
		}
	}

	points, err := s.rateRepo.ListHistoryPointsUpTo(ctx, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history for chart: %w", err)
	}

	resolver := fx.NewResolver(s.baseCurrency, points, current)

	chart := &domain.RateChart{
		Currencies:  currencies,
		PeriodStart: start,
		PeriodEnd:   end,
	}
	one := decimal.NewFromInt(1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		point := domain.RateChartPoint{
			Date:  dto.FormatDate(day),
			Rates: make(map[string]decimal.Decimal, len(currencies)),
		}
		for _, cur := range currencies {
			rate, err := resolver.Resolve(cur, day)
			if err != nil {
				// No history and no current rate left for this currency;
				// chart keeps the series total with a neutral 1.
				rate = one
			}
			point.Rates[cur] = rate
		}
		chart.Points = append(chart.Points, point)
	}

	return chart, nil
}
