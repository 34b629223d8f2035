package repositories

import (
	"context"

	"github.com/famstack/family_account_app/internal/core/domain"
)

// ExchangeReader defines read operations for currency exchange records
type ExchangeReader interface {
	// ListExchanges retrieves the most recent exchange records, newest first.
	ListExchanges(ctx context.Context, limit int) ([]domain.CurrencyExchange, error)

	// ListAllExchanges retrieves every exchange record, no pagination.
	ListAllExchanges(ctx context.Context) ([]domain.CurrencyExchange, error)
}

// ExchangeWriter defines write operations for currency exchange records
type ExchangeWriter interface {
	// SaveExchange persists a new exchange record.
	SaveExchange(ctx context.Context, exchange domain.CurrencyExchange) error
}

// ExchangeRepositoryFacade combines all exchange-related repository interfaces
type ExchangeRepositoryFacade interface {
	ExchangeReader
	ExchangeWriter
}
