package services_test

import (
	"context"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateRepository ---

type MockRateRepository struct {
	mock.Mock
}

var _ portsrepo.RateRepositoryFacade = (*MockRateRepository)(nil)

func (m *MockRateRepository) FindRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockRateRepository) FindHistoryPointOnOrBefore(ctx context.Context, currencyCode string, date time.Time) (*domain.RateHistoryPoint, error) {
	args := m.Called(ctx, currencyCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateHistoryPoint), args.Error(1)
}

func (m *MockRateRepository) ListHistoryPointsUpTo(ctx context.Context, end time.Time) ([]domain.RateHistoryPoint, error) {
	args := m.Called(ctx, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateHistoryPoint), args.Error(1)
}

func (m *MockRateRepository) UpsertRateWithHistory(ctx context.Context, rate domain.ExchangeRate, point domain.RateHistoryPoint) error {
	args := m.Called(ctx, rate, point)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsInRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) CountTransactionsForCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock MemberRepository ---

type MockMemberRepository struct {
	mock.Mock
}

var _ portsrepo.MemberRepositoryFacade = (*MockMemberRepository)(nil)

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

// --- Mock ExchangeRepository ---

type MockExchangeRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRepositoryFacade = (*MockExchangeRepository)(nil)

func (m *MockExchangeRepository) ListExchanges(ctx context.Context, limit int) ([]domain.CurrencyExchange, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyExchange), args.Error(1)
}

func (m *MockExchangeRepository) ListAllExchanges(ctx context.Context) ([]domain.CurrencyExchange, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyExchange), args.Error(1)
}

func (m *MockExchangeRepository) SaveExchange(ctx context.Context, exchange domain.CurrencyExchange) error {
	args := m.Called(ctx, exchange)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetMonthlyTotals(ctx context.Context, year int) ([]portsrepo.MonthlyTotalRow, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.MonthlyTotalRow), args.Error(1)
}

func (m *MockReportingRepository) GetCategoryTotals(ctx context.Context, categoryType domain.CategoryType, start, end time.Time) ([]domain.CategoryTotalRow, error) {
	args := m.Called(ctx, categoryType, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotalRow), args.Error(1)
}

func (m *MockReportingRepository) GetMemberTotals(ctx context.Context, start, end time.Time) ([]portsrepo.MemberTotalRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.MemberTotalRow), args.Error(1)
}

func (m *MockReportingRepository) GetDailyTotals(ctx context.Context, start, end time.Time) ([]portsrepo.DailyTotalRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.DailyTotalRow), args.Error(1)
}
