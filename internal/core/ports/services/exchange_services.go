package services

import (
	"context"

	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/dto"
)

// ExchangeSvcFacade defines operations for currency exchange events.
type ExchangeSvcFacade interface {
	// RecordExchange records a conversion of fromAmount between two
	// currencies. The default converted amount uses current rates; a manual
	// toAmount override recomputes the stored rate from what actually
	// happened.
	RecordExchange(ctx context.Context, req dto.RecordExchangeRequest) (*domain.CurrencyExchange, error)

	// ListExchangeHistory returns the most recent exchange records, newest first.
	ListExchangeHistory(ctx context.Context, limit int) ([]domain.CurrencyExchange, error)
}
