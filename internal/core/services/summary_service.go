package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/utils/fx"
	"github.com/shopspring/decimal"
)

// summaryService implements the SummarySvcFacade interface.
type summaryService struct {
	BaseService
	txnRepo      portsrepo.TransactionReader
	exchangeRepo portsrepo.ExchangeReader
	rateRepo     portsrepo.RateReader
	baseCurrency string
}

// NewSummaryService creates a new summary service.
func NewSummaryService(
	txnRepo portsrepo.TransactionReader,
	exchangeRepo portsrepo.ExchangeReader,
	rateRepo portsrepo.RateReader,
	baseCurrency string,
) portssvc.SummarySvcFacade {
	return &summaryService{
		txnRepo:      txnRepo,
		exchangeRepo: exchangeRepo,
		rateRepo:     rateRepo,
		baseCurrency: baseCurrency,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// GetSummary computes the multi-currency summary for [periodStart, periodEnd].
//
// Period totals convert every in-range transaction at the rate in effect on
// that transaction's own date, so two same-currency transactions inside one
// period can convert at different rates when the rate changed mid-period.
// All-time totals convert at current rates: the all-time balance is a
// present-value snapshot, not a historical one. Currency exchanges move value
// between per-currency balance buckets without touching income or expense;
// any spread between the two legs surfaces in the aggregate balance.
func (s *summaryService) GetSummary(ctx context.Context, periodStart, periodEnd time.Time) (*domain.Summary, error) {
	periodStart = fx.DateOnly(periodStart)
	periodEnd = fx.DateOnly(periodEnd)
	if periodEnd.Before(periodStart) {
		return nil, apperrors.NewValidationError("end date must not precede start date")
	}

	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list current rates: %w", err)
	}
	current := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		current[r.CurrencyCode] = r.Rate
	}

	points, err := s.rateRepo.ListHistoryPointsUpTo(ctx, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history: %w", err)
	}
	resolver := fx.NewResolver(s.baseCurrency, points, current)

	periodTxns, err := s.txnRepo.ListTransactionsInRange(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list period transactions: %w", err)
	}
	allTxns, err := s.txnRepo.ListAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all transactions: %w", err)
	}
	exchanges, err := s.exchangeRepo.ListAllExchanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency exchanges: %w", err)
	}

	summary := &domain.Summary{
		BaseCurrency:      s.baseCurrency,
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		PeriodByCurrency:  make(map[string]domain.CurrencyTotals),
		AllTimeByCurrency: make(map[string]domain.CurrencyBalance),
		TransactionCount:  len(periodTxns),
	}

	// Period pass: each transaction converts at its own date's rate.
	for _, txn := range periodTxns {
		rate, err := resolver.Resolve(txn.CurrencyCode, txn.TransactionDate)
		if err != nil {
			s.LogError(ctx, err, "Aborting summary: unresolvable currency in period",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("currency", txn.CurrencyCode))
			return nil, err
		}
		converted := txn.Amount.Mul(rate)

		totals := summary.PeriodByCurrency[txn.CurrencyCode]
		switch txn.CategoryType {
		case domain.Income:
			totals.Income = totals.Income.Add(txn.Amount)
			summary.PeriodIncome = summary.PeriodIncome.Add(converted)
		case domain.Expense:
			totals.Expense = totals.Expense.Add(txn.Amount)
			summary.PeriodExpense = summary.PeriodExpense.Add(converted)
		}
		summary.PeriodByCurrency[txn.CurrencyCode] = totals
	}
	summary.PeriodBalance = summary.PeriodIncome.Sub(summary.PeriodExpense)

	// All-time pass: raw per-currency totals, converted at current rates.
	for _, txn := range allTxns {
		rate, err := resolver.Current(txn.CurrencyCode)
		if err != nil {
			s.LogError(ctx, err, "Aborting summary: unresolvable currency in ledger",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("currency", txn.CurrencyCode))
			return nil, err
		}
		converted := txn.Amount.Mul(rate)

		bal := summary.AllTimeByCurrency[txn.CurrencyCode]
		switch txn.CategoryType {
		case domain.Income:
			bal.Income = bal.Income.Add(txn.Amount)
			bal.Balance = bal.Balance.Add(txn.Amount)
			summary.AllTimeIncome = summary.AllTimeIncome.Add(converted)
		case domain.Expense:
			bal.Expense = bal.Expense.Add(txn.Amount)
			bal.Balance = bal.Balance.Sub(txn.Amount)
			summary.AllTimeExpense = summary.AllTimeExpense.Add(converted)
		}
		summary.AllTimeByCurrency[txn.CurrencyCode] = bal
	}

	// Exchange adjustment: balance-neutral transfers between currency buckets.
	for _, ex := range exchanges {
		from := summary.AllTimeByCurrency[ex.FromCurrency]
		from.Balance = from.Balance.Sub(ex.FromAmount)
		summary.AllTimeByCurrency[ex.FromCurrency] = from

		to := summary.AllTimeByCurrency[ex.ToCurrency]
		to.Balance = to.Balance.Add(ex.ToAmount)
		summary.AllTimeByCurrency[ex.ToCurrency] = to
	}

	// Aggregate balance from the buckets, at current rates.
	for cur, bal := range summary.AllTimeByCurrency {
		rate, err := resolver.Current(cur)
		if err != nil {
			s.LogError(ctx, err, "Aborting summary: unresolvable currency in balance buckets",
				slog.String("currency", cur))
			return nil, err
		}
		summary.AllTimeBalance = summary.AllTimeBalance.Add(bal.Balance.Mul(rate))
	}

	s.LogInfo(ctx, "Summary computed",
		slog.String("period_start", periodStart.Format("2006-01-02")),
		slog.String("period_end", periodEnd.Format("2006-01-02")),
		slog.Int("period_transactions", len(periodTxns)),
		slog.Int("currencies", len(summary.AllTimeByCurrency)),
	)
	return summary, nil
}
