package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/core/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockRateRepository
	service      portssvc.RateSvcFacade
}

func (s *RateServiceTestSuite) SetupTest() {
	s.mockRateRepo = new(MockRateRepository)
	s.service = services.NewRateService(s.mockRateRepo, "CNY")
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}

func (s *RateServiceTestSuite) TestUpdateRate_Success() {
	ctx := context.Background()
	req := dto.UpdateRateRequest{
		CurrencyCode:  "usd",
		Rate:          decimal.RequireFromString("7.25"),
		EffectiveDate: "2024-01-15",
	}

	s.mockRateRepo.On("UpsertRateWithHistory", ctx,
		mock.MatchedBy(func(r domain.ExchangeRate) bool {
			return r.CurrencyCode == "USD" && r.Rate.Equal(req.Rate)
		}),
		mock.MatchedBy(func(p domain.RateHistoryPoint) bool {
			return p.CurrencyCode == "USD" &&
				p.Rate.Equal(req.Rate) &&
				p.EffectiveDate.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
		}),
	).Return(nil).Once()

	rate, err := s.service.UpdateRate(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(rate)
	s.Equal("USD", rate.CurrencyCode)
	s.True(req.Rate.Equal(rate.Rate))
	s.mockRateRepo.AssertExpectations(s.T())
}

// Repeating an update for the same currency and effective date reaches
// storage under the same history key both times. The pgsql repository upserts
// that key with ON CONFLICT, so the second write overwrites the first rate
// instead of adding a row.
func (s *RateServiceTestSuite) TestUpdateRate_RepeatForSameDateKeepsOneHistoryKey() {
	ctx := context.Background()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	s.mockRateRepo.On("UpsertRateWithHistory", ctx,
		mock.AnythingOfType("domain.ExchangeRate"),
		mock.MatchedBy(func(p domain.RateHistoryPoint) bool {
			return p.CurrencyCode == "USD" && p.EffectiveDate.Equal(date)
		}),
	).Return(nil).Twice()

	_, err := s.service.UpdateRate(ctx, dto.UpdateRateRequest{
		CurrencyCode:  "USD",
		Rate:          decimal.RequireFromString("7.20"),
		EffectiveDate: "2024-01-15",
	})
	s.Require().NoError(err)

	updated, err := s.service.UpdateRate(ctx, dto.UpdateRateRequest{
		CurrencyCode:  "usd",
		Rate:          decimal.RequireFromString("7.30"),
		EffectiveDate: "2024-01-15",
	})

	s.Require().NoError(err)
	s.True(decimal.RequireFromString("7.30").Equal(updated.Rate))
	s.mockRateRepo.AssertExpectations(s.T())
	s.mockRateRepo.AssertNumberOfCalls(s.T(), "UpsertRateWithHistory", 2)
}

func (s *RateServiceTestSuite) TestUpdateRate_DefaultsEffectiveDateToToday() {
	ctx := context.Background()
	req := dto.UpdateRateRequest{
		CurrencyCode: "JPY",
		Rate:         decimal.RequireFromString("0.052"),
	}
	today := fx.DateOnly(time.Now())

	s.mockRateRepo.On("UpsertRateWithHistory", ctx,
		mock.AnythingOfType("domain.ExchangeRate"),
		mock.MatchedBy(func(p domain.RateHistoryPoint) bool {
			return p.EffectiveDate.Equal(today)
		}),
	).Return(nil).Once()

	_, err := s.service.UpdateRate(ctx, req)

	s.Require().NoError(err)
	s.mockRateRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestUpdateRate_RejectsNonPositiveRate() {
	ctx := context.Background()
	req := dto.UpdateRateRequest{
		CurrencyCode: "USD",
		Rate:         decimal.Zero,
	}

	rate, err := s.service.UpdateRate(ctx, req)

	s.Require().Error(err)
	s.Nil(rate)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRateRepo.AssertNotCalled(s.T(), "UpsertRateWithHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RateServiceTestSuite) TestGetHistoricalRate_BaseCurrencyIsOne() {
	ctx := context.Background()

	rate, err := s.service.GetHistoricalRate(ctx, "CNY", time.Now())

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(1).Equal(rate))
	s.mockRateRepo.AssertNotCalled(s.T(), "FindHistoryPointOnOrBefore", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RateServiceTestSuite) TestGetHistoricalRate_UsesHistoryPoint() {
	ctx := context.Background()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	s.mockRateRepo.On("FindHistoryPointOnOrBefore", ctx, "USD", date).Return(&domain.RateHistoryPoint{
		CurrencyCode:  "USD",
		Rate:          decimal.RequireFromString("7.0"),
		EffectiveDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}, nil).Once()

	rate, err := s.service.GetHistoricalRate(ctx, "usd", date)

	s.Require().NoError(err)
	s.True(decimal.RequireFromString("7.0").Equal(rate))
	s.mockRateRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestGetHistoricalRate_FallsBackToCurrentRate() {
	ctx := context.Background()
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	s.mockRateRepo.On("FindHistoryPointOnOrBefore", ctx, "USD", date).
		Return(nil, apperrors.NewNotFoundError("no rate history for currency USD")).Once()
	s.mockRateRepo.On("FindRate", ctx, "USD").Return(&domain.ExchangeRate{
		CurrencyCode: "USD",
		Rate:         decimal.RequireFromString("7.25"),
	}, nil).Once()

	rate, err := s.service.GetHistoricalRate(ctx, "USD", date)

	s.Require().NoError(err)
	s.True(decimal.RequireFromString("7.25").Equal(rate))
	s.mockRateRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestGetHistoricalRate_UnknownCurrency() {
	ctx := context.Background()
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	s.mockRateRepo.On("FindHistoryPointOnOrBefore", ctx, "BTC", date).
		Return(nil, apperrors.NewNotFoundError("no rate history for currency BTC")).Once()
	s.mockRateRepo.On("FindRate", ctx, "BTC").
		Return(nil, apperrors.NewNotFoundError("no rate found for currency BTC")).Once()

	_, err := s.service.GetHistoricalRate(ctx, "BTC", date)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)
	s.mockRateRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestGetRateChart_ForwardFillsPerDay() {
	ctx := context.Background()
	start := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	s.mockRateRepo.On("ListRates", ctx).Return([]domain.ExchangeRate{
		{CurrencyCode: "CNY", Rate: decimal.NewFromInt(1)},
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.25")},
	}, nil).Once()
	s.mockRateRepo.On("ListHistoryPointsUpTo", ctx, end).Return([]domain.RateHistoryPoint{
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.0"), EffectiveDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("7.1"), EffectiveDate: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()

	chart, err := s.service.GetRateChart(ctx, start, end)

	s.Require().NoError(err)
	s.Require().NotNil(chart)
	// Base currency is not charted.
	s.Equal([]string{"USD"}, chart.Currencies)
	s.Require().Len(chart.Points, 4)

	// Day before any history uses the current rate.
	s.Equal("2024-01-09", chart.Points[0].Date)
	s.True(decimal.RequireFromString("7.25").Equal(chart.Points[0].Rates["USD"]))
	// History point day and forward fill.
	s.True(decimal.RequireFromString("7.0").Equal(chart.Points[1].Rates["USD"]))
	s.True(decimal.RequireFromString("7.0").Equal(chart.Points[2].Rates["USD"]))
	s.True(decimal.RequireFromString("7.1").Equal(chart.Points[3].Rates["USD"]))
	s.mockRateRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestGetRateChart_RejectsInvertedRange() {
	ctx := context.Background()
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	chart, err := s.service.GetRateChart(ctx, start, end)

	s.Require().Error(err)
	s.Nil(chart)
	s.ErrorIs(err, apperrors.ErrValidation)
}
