package dto

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateRateRequest defines the structure for upserting a currency's rate.
// EffectiveDate defaults to today when absent.
type UpdateRateRequest struct {
	CurrencyCode  string          `json:"currency" binding:"required,len=3,alpha"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
	EffectiveDate string          `json:"effectiveDate" binding:"omitempty,datetime=2006-01-02"`
}

// RateResponse is one currency's current rate in API responses.
type RateResponse struct {
	CurrencyCode string          `json:"currency"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    string          `json:"updatedAt"`
}

// ToRateResponse converts a domain.ExchangeRate to a RateResponse DTO.
func ToRateResponse(rate *domain.ExchangeRate) RateResponse {
	return RateResponse{
		CurrencyCode: rate.CurrencyCode,
		Rate:         rate.Rate,
		UpdatedAt:    rate.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListRateResponse converts current rates to a code-keyed response map.
func ToListRateResponse(rates []domain.ExchangeRate) map[string]RateResponse {
	out := make(map[string]RateResponse, len(rates))
	for i := range rates {
		out[rates[i].CurrencyCode] = ToRateResponse(&rates[i])
	}
	return out
}

// HistoricalRateResponse is a resolved rate for one currency on one date.
type HistoricalRateResponse struct {
	CurrencyCode string          `json:"currency"`
	Date         string          `json:"date"`
	Rate         decimal.Decimal `json:"rate"`
}

// RateChartResponse is the forward-filled daily rate series for charting.
type RateChartResponse struct {
	Currencies []string                 `json:"currencies"`
	Points     []RateChartPointResponse `json:"points"`
	Period     PeriodResponse           `json:"period"`
}

// RateChartPointResponse is one day of the chart series.
type RateChartPointResponse struct {
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// PeriodResponse is a resolved date range in API responses.
type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToRateChartResponse converts a domain.RateChart to its response DTO.
func ToRateChartResponse(chart *domain.RateChart) RateChartResponse {
	points := make([]RateChartPointResponse, len(chart.Points))
	for i, p := range chart.Points {
		points[i] = RateChartPointResponse{Date: p.Date, Rates: p.Rates}
	}
	return RateChartResponse{
		Currencies: chart.Currencies,
		Points:     points,
		Period: PeriodResponse{
			Start: FormatDate(chart.PeriodStart),
			End:   FormatDate(chart.PeriodEnd),
		},
	}
}
