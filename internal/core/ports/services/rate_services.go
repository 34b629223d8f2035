package services

import (
	"context"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/shopspring/decimal"
)

// RateSvcFacade defines operations on current rates and the rate history.
type RateSvcFacade interface {
	// ListRates returns the current rate of every known currency.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// UpdateRate upserts a currency's current rate and the matching history
	// point (effective date defaults to today).
	UpdateRate(ctx context.Context, req dto.UpdateRateRequest) (*domain.ExchangeRate, error)

	// GetHistoricalRate resolves the rate in effect for a currency on a date:
	// most recent history point on or before the date, current rate as
	// fallback, exactly 1 for the base currency.
	GetHistoricalRate(ctx context.Context, currencyCode string, date time.Time) (decimal.Decimal, error)

	// GetRateChart builds the forward-filled per-day rate series for charting.
	GetRateChart(ctx context.Context, start, end time.Time) (*domain.RateChart, error)
}
