package repositories

import (
	"context"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
)

// RateReader defines read operations for current rates and the rate history
type RateReader interface {
	// FindRate retrieves the current rate for a currency.
	FindRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// ListRates retrieves the current rate of every known currency, ordered by code.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// FindHistoryPointOnOrBefore retrieves the most recent history point for a
	// currency with effective_date <= date.
	FindHistoryPointOnOrBefore(ctx context.Context, currencyCode string, date time.Time) (*domain.RateHistoryPoint, error)

	// ListHistoryPointsUpTo retrieves every history point with
	// effective_date <= end, ordered by currency then effective_date.
	ListHistoryPointsUpTo(ctx context.Context, end time.Time) ([]domain.RateHistoryPoint, error)
}

// RateWriter defines write operations for current rates and the rate history
type RateWriter interface {
	// UpsertRateWithHistory atomically replaces the single current-rate row of
	// a currency and inserts or overwrites the history point for the point's
	// (currency, effective_date) pair. Last write wins per date.
	UpsertRateWithHistory(ctx context.Context, rate domain.ExchangeRate, point domain.RateHistoryPoint) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}

// RateRepositoryWithTx extends RateRepositoryFacade with transaction capabilities
type RateRepositoryWithTx interface {
	RateRepositoryFacade
	TransactionManager
}
