package mapping

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		CurrencyCode: d.CurrencyCode,
		Rate:         d.Rate,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		CurrencyCode: m.CurrencyCode,
		Rate:         m.Rate,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToModelRateHistoryPoint converts a domain RateHistoryPoint to a model RateHistoryPoint
func ToModelRateHistoryPoint(d domain.RateHistoryPoint) models.RateHistoryPoint {
	return models.RateHistoryPoint{
		CurrencyCode:  d.CurrencyCode,
		Rate:          d.Rate,
		EffectiveDate: d.EffectiveDate,
	}
}

// ToDomainRateHistoryPoint converts a model RateHistoryPoint to a domain RateHistoryPoint
func ToDomainRateHistoryPoint(m models.RateHistoryPoint) domain.RateHistoryPoint {
	return domain.RateHistoryPoint{
		CurrencyCode:  m.CurrencyCode,
		Rate:          m.Rate,
		EffectiveDate: m.EffectiveDate,
	}
}

// ToDomainRateHistoryPoints converts a slice of model RateHistoryPoint to domain
func ToDomainRateHistoryPoints(ms []models.RateHistoryPoint) []domain.RateHistoryPoint {
	out := make([]domain.RateHistoryPoint, len(ms))
	for i, m := range ms {
		out[i] = ToDomainRateHistoryPoint(m)
	}
	return out
}
