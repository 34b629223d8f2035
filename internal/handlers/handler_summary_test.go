package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetSummary(ctx context.Context, periodStart, periodEnd time.Time) (*domain.Summary, error) {
	args := m.Called(ctx, periodStart, periodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockRateService) UpdateRate(ctx context.Context, req dto.UpdateRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateService) GetHistoricalRate(ctx context.Context, currencyCode string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateService) GetRateChart(ctx context.Context, start, end time.Time) (*domain.RateChart, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateChart), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Test Suite ---
type SummaryHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockSummaryService *MockSummaryService
	mockRateService    *MockRateService
}

func (suite *SummaryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockSummaryService = new(MockSummaryService)
	suite.mockRateService = new(MockRateService)

	handlers.RegisterRoutes(suite.router, nil, &portssvc.ServiceContainer{
		Summary: suite.mockSummaryService,
		Rate:    suite.mockRateService,
	})
}

// currentMonthBounds returns the first and last day of the current calendar
// month, the defaults for an omitted period bound.
func currentMonthBounds() (time.Time, time.Time) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

func (suite *SummaryHandlerTestSuite) serveGET(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

// Omitting end_date defaults it to the last day of the current month while
// the supplied start_date is honored.
func (suite *SummaryHandlerTestSuite) TestGetSummary_DefaultsEndWhenOnlyStartGiven() {
	_, monthEnd := currentMonthBounds()
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	suite.mockSummaryService.On("GetSummary", mock.Anything, start, monthEnd).
		Return(&domain.Summary{BaseCurrency: "CNY", PeriodStart: start, PeriodEnd: monthEnd}, nil).Once()

	w := suite.serveGET("/api/v1/summary?start_date=2024-03-10")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSummaryService.AssertExpectations(suite.T())
}

// Omitting start_date defaults it to the first day of the current month while
// the supplied end_date is honored.
func (suite *SummaryHandlerTestSuite) TestGetSummary_DefaultsStartWhenOnlyEndGiven() {
	monthStart, _ := currentMonthBounds()
	end := time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC)

	suite.mockSummaryService.On("GetSummary", mock.Anything, monthStart, end).
		Return(&domain.Summary{BaseCurrency: "CNY", PeriodStart: monthStart, PeriodEnd: end}, nil).Once()

	w := suite.serveGET("/api/v1/summary?end_date=2030-12-31")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSummaryService.AssertExpectations(suite.T())
}

func (suite *SummaryHandlerTestSuite) TestGetSummary_RejectsMalformedDate() {
	w := suite.serveGET("/api/v1/summary?start_date=not-a-date")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSummaryService.AssertNotCalled(suite.T(), "GetSummary", mock.Anything, mock.Anything, mock.Anything)
}

// With only end_date given, the chart start defaults to ?days= before that
// end, not to an error.
func (suite *SummaryHandlerTestSuite) TestGetRateChart_DefaultsStartFromDaysWhenOnlyEndGiven() {
	end := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -9)

	suite.mockRateService.On("GetRateChart", mock.Anything, start, end).
		Return(&domain.RateChart{PeriodStart: start, PeriodEnd: end}, nil).Once()

	w := suite.serveGET("/api/v1/rates/chart?end_date=2024-04-30&days=10")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRateService.AssertExpectations(suite.T())
}

// With only start_date given, the chart end defaults to today.
func (suite *SummaryHandlerTestSuite) TestGetRateChart_DefaultsEndToTodayWhenOnlyStartGiven() {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRateService.On("GetRateChart", mock.Anything, start, today).
		Return(&domain.RateChart{PeriodStart: start, PeriodEnd: today}, nil).Once()

	w := suite.serveGET("/api/v1/rates/chart?start_date=2024-04-01")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRateService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSummaryHandler(t *testing.T) {
	suite.Run(t, new(SummaryHandlerTestSuite))
}
