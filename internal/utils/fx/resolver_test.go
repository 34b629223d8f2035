package fx_test

import (
	"testing"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func point(currency, rate, effective string) domain.RateHistoryPoint {
	return domain.RateHistoryPoint{
		CurrencyCode:  currency,
		Rate:          decimal.RequireFromString(rate),
		EffectiveDate: day(effective),
	}
}

func newTestResolver() *fx.Resolver {
	// History arrives unsorted on purpose.
	points := []domain.RateHistoryPoint{
		point("USD", "7.1", "2024-02-01"),
		point("USD", "7.0", "2024-01-10"),
		point("JPY", "0.050", "2024-01-20"),
	}
	current := map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("7.25"),
		"JPY": decimal.RequireFromString("0.052"),
	}
	return fx.NewResolver("CNY", points, current)
}

func TestResolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name     string
		currency string
		date     string
		want     string
	}{
		{"base currency is always 1", "CNY", "2024-01-15", "1"},
		{"exact effective date", "USD", "2024-01-10", "7.0"},
		{"most recent on or before", "USD", "2024-01-15", "7.0"},
		{"later point takes over", "USD", "2024-02-01", "7.1"},
		{"forward fill past last point", "USD", "2024-06-30", "7.1"},
		{"before all history falls back to current", "USD", "2024-01-05", "7.25"},
		{"other currency series is independent", "JPY", "2024-03-01", "0.050"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.currency, day(tt.date))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"want %s, got %s", tt.want, got)
		})
	}
}

func TestResolveTimeOfDayIgnored(t *testing.T) {
	r := newTestResolver()

	late := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	got, err := r.Resolve("USD", late)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7.0").Equal(got))
}

func TestResolveUnknownCurrency(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve("BTC", day("2024-01-15"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestCurrent(t *testing.T) {
	r := newTestResolver()

	got, err := r.Current("USD")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7.25").Equal(got))

	got, err = r.Current("CNY")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(got))

	_, err = r.Current("BTC")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestCurrentFallsBackToLatestHistory(t *testing.T) {
	points := []domain.RateHistoryPoint{
		point("EUR", "7.6", "2024-01-01"),
		point("EUR", "7.8", "2024-03-01"),
	}
	r := fx.NewResolver("CNY", points, map[string]decimal.Decimal{})

	got, err := r.Current("EUR")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7.8").Equal(got))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 5, 3, 17, 42, 9, 123, time.UTC)
	got := fx.DateOnly(in)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), got)
}
