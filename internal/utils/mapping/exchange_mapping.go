package mapping

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/models"
)

// ToModelCurrencyExchange converts a domain CurrencyExchange to a model CurrencyExchange
func ToModelCurrencyExchange(d domain.CurrencyExchange) models.CurrencyExchange {
	return models.CurrencyExchange{
		ExchangeID:   d.ExchangeID,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		FromAmount:   d.FromAmount,
		ToAmount:     d.ToAmount,
		ExchangeRate: d.ExchangeRate,
		ExchangeDate: d.ExchangeDate,
		Member:       d.Member,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainCurrencyExchange converts a model CurrencyExchange to a domain CurrencyExchange
func ToDomainCurrencyExchange(m models.CurrencyExchange) domain.CurrencyExchange {
	return domain.CurrencyExchange{
		ExchangeID:   m.ExchangeID,
		FromCurrency: m.FromCurrency,
		ToCurrency:   m.ToCurrency,
		FromAmount:   m.FromAmount,
		ToAmount:     m.ToAmount,
		ExchangeRate: m.ExchangeRate,
		ExchangeDate: m.ExchangeDate,
		Member:       m.Member,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainCurrencyExchanges converts a slice of model CurrencyExchange to domain
func ToDomainCurrencyExchanges(ms []models.CurrencyExchange) []domain.CurrencyExchange {
	out := make([]domain.CurrencyExchange, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCurrencyExchange(m)
	}
	return out
}
