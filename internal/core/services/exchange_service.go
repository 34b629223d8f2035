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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultExchangeHistoryLimit = 50

// exchangeService implements the ExchangeSvcFacade interface.
type exchangeService struct {
	BaseService
	exchangeRepo portsrepo.ExchangeRepositoryFacade
	rateRepo     portsrepo.RateReader
	baseCurrency string
}

// NewExchangeService creates a new exchange service.
func NewExchangeService(
	exchangeRepo portsrepo.ExchangeRepositoryFacade,
	rateRepo portsrepo.RateReader,
	baseCurrency string,
) portssvc.ExchangeSvcFacade {
	return &exchangeService{
		exchangeRepo: exchangeRepo,
		rateRepo:     rateRepo,
		baseCurrency: baseCurrency,
	}
}

var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

// RecordExchange records a conversion between two currencies.
//
// The default conversion routes through the base currency at current rates:
// toAmount = fromAmount * rate(from) / rate(to). A manual toAmount override
// wins, and the stored rate is then recomputed as toAmount/fromAmount so the
// record reflects what actually happened rather than the table rate. Current
// rates, not historical ones, feed the default even for back-dated exchanges.
func (s *exchangeService) RecordExchange(ctx context.Context, req dto.RecordExchangeRequest) (*domain.CurrencyExchange, error) {
	fromCurrency := strings.ToUpper(req.FromCurrency)
	toCurrency := strings.ToUpper(req.ToCurrency)

	if fromCurrency == toCurrency {
		return nil, apperrors.NewValidationError("cannot exchange same currency")
	}
	if req.FromAmount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("from amount must be positive")
	}

	exchangeDate, err := dto.ParseDate(req.ExchangeDate)
	if err != nil {
		return nil, apperrors.NewValidationError("exchange date must be YYYY-MM-DD")
	}

	fromRate, err := s.currentRate(ctx, fromCurrency)
	if err != nil {
		return nil, err
	}
	toRate, err := s.currentRate(ctx, toCurrency)
	if err != nil {
		return nil, err
	}

	// Route through the base currency.
	toAmount := req.FromAmount.Mul(fromRate).Div(toRate)
	exchangeRate := fromRate.Div(toRate)

	if req.ToAmount != nil {
		if req.ToAmount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError("to amount must be positive")
		}
		toAmount = *req.ToAmount
		exchangeRate = toAmount.Div(req.FromAmount)
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Exchange %s to %s", fromCurrency, toCurrency)
	}

	exchange := domain.CurrencyExchange{
		ExchangeID:   uuid.NewString(),
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		FromAmount:   req.FromAmount,
		ToAmount:     toAmount.Round(2),
		ExchangeRate: exchangeRate,
		ExchangeDate: fx.DateOnly(exchangeDate),
		Member:       req.Member,
		Description:  description,
		CreatedAt:    time.Now(),
	}

	if err := s.exchangeRepo.SaveExchange(ctx, exchange); err != nil {
		return nil, fmt.Errorf("failed to save currency exchange: %w", err)
	}

	s.LogInfo(ctx, "Currency exchange recorded",
		slog.String("exchange_id", exchange.ExchangeID),
		slog.String("from", fromCurrency),
		slog.String("to", toCurrency),
		slog.String("from_amount", exchange.FromAmount.String()),
		slog.String("to_amount", exchange.ToAmount.String()),
		slog.String("rate", exchange.ExchangeRate.String()),
	)
	return &exchange, nil
}

// ListExchangeHistory returns the most recent exchanges, newest first.
func (s *exchangeService) ListExchangeHistory(ctx context.Context, limit int) ([]domain.CurrencyExchange, error) {
	if limit <= 0 {
		limit = defaultExchangeHistoryLimit
	}
	exchanges, err := s.exchangeRepo.ListExchanges(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency exchanges: %w", err)
	}
	return exchanges, nil
}

// currentRate reads a currency's current rate; the base currency is fixed at 1.
func (s *exchangeService) currentRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	if currency == s.baseCurrency {
		return decimal.NewFromInt(1), nil
	}
	rate, err := s.rateRepo.FindRate(ctx, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Decimal{}, apperrors.NewUnknownCurrencyError(currency)
		}
		return decimal.Decimal{}, fmt.Errorf("failed to look up current rate for %s: %w", currency, err)
	}
	return rate.Rate, nil
}
