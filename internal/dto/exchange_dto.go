package dto

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordExchangeRequest defines the structure for recording a currency
// exchange. ToAmount is an optional manual override (e.g. the actual
// bank-quoted amount); when set, the stored rate is recomputed from it.
type RecordExchangeRequest struct {
	FromCurrency string           `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string           `json:"toCurrency" binding:"required,len=3,alpha"`
	FromAmount   decimal.Decimal  `json:"fromAmount" binding:"required"`
	ExchangeDate string           `json:"exchangeDate" binding:"required,datetime=2006-01-02"`
	ToAmount     *decimal.Decimal `json:"toAmount,omitempty"`
	Member       string           `json:"member,omitempty"`
	Description  string           `json:"description,omitempty"`
}

// ExchangeResponse is a stored currency exchange record in API responses.
type ExchangeResponse struct {
	ExchangeID   string          `json:"exchangeID"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	ExchangeDate string          `json:"exchangeDate"`
	Member       string          `json:"member,omitempty"`
	Description  string          `json:"description"`
	CreatedAt    string          `json:"createdAt"`
}

// ToExchangeResponse converts a domain.CurrencyExchange to its response DTO.
func ToExchangeResponse(e *domain.CurrencyExchange) ExchangeResponse {
	return ExchangeResponse{
		ExchangeID:   e.ExchangeID,
		FromCurrency: e.FromCurrency,
		ToCurrency:   e.ToCurrency,
		FromAmount:   e.FromAmount.Round(2),
		ToAmount:     e.ToAmount.Round(2),
		ExchangeRate: e.ExchangeRate,
		ExchangeDate: FormatDate(e.ExchangeDate),
		Member:       e.Member,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListExchangeResponse converts a slice of exchanges to response DTOs.
func ToListExchangeResponse(exchanges []domain.CurrencyExchange) []ExchangeResponse {
	out := make([]ExchangeResponse, len(exchanges))
	for i := range exchanges {
		out[i] = ToExchangeResponse(&exchanges[i])
	}
	return out
}
