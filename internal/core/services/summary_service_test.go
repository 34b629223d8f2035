package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockExchangeRepo *MockExchangeRepository
	mockRateRepo     *MockRateRepository
	service          portssvc.SummarySvcFacade
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockExchangeRepo = new(MockExchangeRepository)
	s.mockRateRepo = new(MockRateRepository)
	s.service = services.NewSummaryService(s.mockTxnRepo, s.mockExchangeRepo, s.mockRateRepo, "CNY")
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func summaryTxn(id, currency, amount string, categoryType domain.CategoryType, date string) domain.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return domain.Transaction{
		TransactionID:   id,
		Amount:          decimal.RequireFromString(amount),
		CurrencyCode:    currency,
		TransactionDate: d,
		CategoryType:    categoryType,
	}
}

func (s *SummaryServiceTestSuite) expectRates() {
	s.mockRateRepo.On("ListRates", context.Background()).Return([]domain.ExchangeRate{
		{CurrencyCode: "CNY", Rate: decimal.NewFromInt(1)},
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.25")},
	}, nil).Once()
}

func (s *SummaryServiceTestSuite) expectHistory(points []domain.RateHistoryPoint, end time.Time) {
	s.mockRateRepo.On("ListHistoryPointsUpTo", context.Background(), end).Return(points, nil).Once()
}

// A period transaction converts at the rate in effect on its own date, even
// when the current rate has since moved.
func (s *SummaryServiceTestSuite) TestGetSummary_PeriodUsesHistoricalRate() {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	txn := summaryTxn("t1", "USD", "100", domain.Income, "2024-01-15")

	s.expectRates()
	s.expectHistory([]domain.RateHistoryPoint{
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.0"), EffectiveDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
	}, end)
	s.mockTxnRepo.On("ListTransactionsInRange", ctx, start, end).Return([]domain.Transaction{txn}, nil).Once()
	s.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{txn}, nil).Once()
	s.mockExchangeRepo.On("ListAllExchanges", ctx).Return([]domain.CurrencyExchange{}, nil).Once()

	summary, err := s.service.GetSummary(ctx, start, end)

	s.Require().NoError(err)
	s.Require().NotNil(summary)

	// Period income: 100 USD at the 2024-01-10 rate of 7.0, not current 7.25.
	s.True(decimal.RequireFromString("700").Equal(summary.PeriodIncome),
		"period income: want 700, got %s", summary.PeriodIncome)
	s.True(decimal.RequireFromString("100").Equal(summary.PeriodByCurrency["USD"].Income))
	s.Equal(1, summary.TransactionCount)

	// All-time income is a present-value snapshot at the current 7.25.
	s.True(decimal.RequireFromString("725").Equal(summary.AllTimeIncome),
		"all-time income: want 725, got %s", summary.AllTimeIncome)
	s.True(decimal.RequireFromString("725").Equal(summary.AllTimeBalance))
	s.mockRateRepo.AssertExpectations(s.T())
}

// A currency exchange moves value between buckets without touching income or
// expense, and the aggregate balance stays consistent with the buckets.
func (s *SummaryServiceTestSuite) TestGetSummary_ExchangeAdjustsBalances() {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	income := summaryTxn("t1", "CNY", "1000", domain.Income, "2024-03-05")
	exchange := domain.CurrencyExchange{
		ExchangeID:   "e1",
		FromCurrency: "CNY",
		ToCurrency:   "USD",
		FromAmount:   decimal.RequireFromString("100"),
		ToAmount:     decimal.RequireFromString("13.79"),
	}

	s.expectRates()
	s.expectHistory(nil, end)
	s.mockTxnRepo.On("ListTransactionsInRange", ctx, start, end).Return([]domain.Transaction{income}, nil).Once()
	s.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{income}, nil).Once()
	s.mockExchangeRepo.On("ListAllExchanges", ctx).Return([]domain.CurrencyExchange{exchange}, nil).Once()

	summary, err := s.service.GetSummary(ctx, start, end)

	s.Require().NoError(err)

	cny := summary.AllTimeByCurrency["CNY"]
	usd := summary.AllTimeByCurrency["USD"]
	s.True(decimal.RequireFromString("900").Equal(cny.Balance), "CNY balance: got %s", cny.Balance)
	s.True(decimal.RequireFromString("13.79").Equal(usd.Balance), "USD balance: got %s", usd.Balance)

	// Income and expense are untouched by the exchange.
	s.True(decimal.RequireFromString("1000").Equal(cny.Income))
	s.True(usd.Income.IsZero())
	s.True(decimal.RequireFromString("1000").Equal(summary.AllTimeIncome))
	s.True(summary.AllTimeExpense.IsZero())

	// Aggregate balance: 900 + 13.79*7.25 = 999.9775 (the rounding spread).
	s.True(decimal.RequireFromString("999.9775").Equal(summary.AllTimeBalance),
		"aggregate balance: got %s", summary.AllTimeBalance)
	s.mockExchangeRepo.AssertExpectations(s.T())
}

// Mid-period rate changes convert each transaction at its own date's rate.
func (s *SummaryServiceTestSuite) TestGetSummary_MidPeriodRateChange() {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	early := summaryTxn("t1", "USD", "100", domain.Expense, "2024-01-05")
	late := summaryTxn("t2", "USD", "100", domain.Expense, "2024-01-20")

	s.expectRates()
	s.expectHistory([]domain.RateHistoryPoint{
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.0"), EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.2"), EffectiveDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}, end)
	s.mockTxnRepo.On("ListTransactionsInRange", ctx, start, end).Return([]domain.Transaction{early, late}, nil).Once()
	s.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{early, late}, nil).Once()
	s.mockExchangeRepo.On("ListAllExchanges", ctx).Return([]domain.CurrencyExchange{}, nil).Once()

	summary, err := s.service.GetSummary(ctx, start, end)

	s.Require().NoError(err)
	// 100*7.0 + 100*7.2 = 1420
	s.True(decimal.RequireFromString("1420").Equal(summary.PeriodExpense),
		"period expense: got %s", summary.PeriodExpense)
	s.True(decimal.RequireFromString("-1420").Equal(summary.PeriodBalance))
}

// The order the repositories return rows in does not affect the totals.
func (s *SummaryServiceTestSuite) TestGetSummary_OrderIndependent() {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t1 := summaryTxn("t1", "USD", "100", domain.Expense, "2024-01-05")
	t2 := summaryTxn("t2", "CNY", "250", domain.Expense, "2024-01-12")
	t3 := summaryTxn("t3", "USD", "40", domain.Income, "2024-01-20")
	history := []domain.RateHistoryPoint{
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.0"), EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.2"), EffectiveDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	s.expectRates()
	s.expectHistory(history, end)
	s.mockTxnRepo.On("ListTransactionsInRange", ctx, start, end).Return([]domain.Transaction{t1, t2, t3}, nil).Once()
	s.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{t1, t2, t3}, nil).Once()
	s.mockExchangeRepo.On("ListAllExchanges", ctx).Return([]domain.CurrencyExchange{}, nil).Once()

	first, err := s.service.GetSummary(ctx, start, end)
	s.Require().NoError(err)

	s.expectRates()
	s.expectHistory(history, end)
	s.mockTxnRepo.On("ListTransactionsInRange", ctx, start, end).Return([]domain.Transaction{t3, t1, t2}, nil).Once()
	s.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{t2, t3, t1}, nil).Once()
	s.mockExchangeRepo.On("ListAllExchanges", ctx).Return([]domain.CurrencyExchange{}, nil).Once()

	second, err := s.service.GetSummary(ctx, start, end)
	s.Require().NoError(err)

	// 100*7.0 + 250 = 950 either way.
	s.True(decimal.RequireFromString("950").Equal(first.PeriodExpense),
		"period expense: got %s", first.PeriodExpense)
	s.True(first.PeriodExpense.Equal(second.PeriodExpense))
	s.True(first.PeriodIncome.Equal(second.PeriodIncome))
	// All-time at current 7.25: 40*7.25 - (100*7.25 + 250) = -685.
	s.True(decimal.RequireFromString("-685").Equal(first.AllTimeBalance),
		"all-time balance: got %s", first.AllTimeBalance)
	s.True(first.AllTimeBalance.Equal(second.AllTimeBalance))
	s.Equal(first.TransactionCount, second.TransactionCount)
	s.mockTxnRepo.AssertExpectations(s.T())
}

// An unresolvable currency anywhere in the ledger aborts the whole summary.
func (s *SummaryServiceTestSuite) TestGetSummary_AbortsOnUnknownCurrency() {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	txn := summaryTxn("t1", "BTC", "1", domain.Income, "2024-01-15")

	s.expectRates()
	s.expectHistory(nil, end)
	s.mockTxnRepo.On("ListTransactionsInRange", ctx, start, end).Return([]domain.Transaction{txn}, nil).Once()
	s.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{txn}, nil).Once()
	s.mockExchangeRepo.On("ListAllExchanges", ctx).Return([]domain.CurrencyExchange{}, nil).Once()

	summary, err := s.service.GetSummary(ctx, start, end)

	s.Require().Error(err)
	s.Nil(summary)
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (s *SummaryServiceTestSuite) TestGetSummary_RejectsInvertedRange() {
	ctx := context.Background()
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	summary, err := s.service.GetSummary(ctx, start, end)

	s.Require().Error(err)
	s.Nil(summary)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SummaryServiceTestSuite) TestGetSummary_EmptyLedger() {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	s.expectRates()
	s.expectHistory(nil, end)
	s.mockTxnRepo.On("ListTransactionsInRange", ctx, start, end).Return([]domain.Transaction{}, nil).Once()
	s.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
	s.mockExchangeRepo.On("ListAllExchanges", ctx).Return([]domain.CurrencyExchange{}, nil).Once()

	summary, err := s.service.GetSummary(ctx, start, end)

	s.Require().NoError(err)
	s.True(summary.PeriodIncome.IsZero())
	s.True(summary.AllTimeBalance.IsZero())
	s.Equal(0, summary.TransactionCount)
	s.Empty(summary.PeriodByCurrency)
}
