package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/middleware"
	"github.com/famstack/family_account_app/internal/utils/fx"
	"github.com/gin-gonic/gin"
)

const defaultChartDays = 90

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.PUT("", h.updateRate)
		rates.GET("/chart", h.getRateChart)
		rates.GET("/historical", h.getHistoricalRate)
	}
}

// listRates returns the current rate of every known currency, keyed by code.
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// updateRate upserts a currency's current rate and the matching history point.
func (h *rateHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	updated, err := h.rateService.UpdateRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate"})
		}
		return
	}

	logger.Info("Rate updated", slog.String("currency", updated.CurrencyCode))
	c.JSON(http.StatusOK, dto.ToRateResponse(updated))
}

// getRateChart returns the forward-filled daily rate series for
// ?start_date=&end_date=, each bound defaulting independently (end to today,
// start to ?days= before the end, default 90).
func (h *rateHandler) getRateChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, err := chartWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.rateService.GetRateChart(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build rate chart", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build rate chart"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateChartResponse(chart))
}

// getHistoricalRate resolves the rate in effect for ?currency= on ?date=
// (default today).
func (h *rateHandler) getHistoricalRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency := c.Query("currency")
	if currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency is required"})
		return
	}

	date := fx.DateOnly(time.Now().UTC())
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := dto.ParseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a YYYY-MM-DD date"})
			return
		}
		date = parsed
	}

	rate, err := h.rateService.GetHistoricalRate(c.Request.Context(), currency, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCurrency) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to resolve historical rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve historical rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.HistoricalRateResponse{
		CurrencyCode: strings.ToUpper(currency),
		Date:         dto.FormatDate(date),
		Rate:         rate,
	})
}

// chartWindow resolves the chart range. Each bound defaults independently:
// end to today, start to ?days= (default 90) before the resolved end.
func chartWindow(c *gin.Context) (time.Time, time.Time, error) {
	days := defaultChartDays
	if daysStr := c.Query("days"); daysStr != "" {
		d, err := strconv.Atoi(daysStr)
		if err != nil || d < 1 || d > 3650 {
			return time.Time{}, time.Time{}, errors.New("days must be an integer between 1 and 3650")
		}
		days = d
	}

	end := fx.DateOnly(time.Now().UTC())
	if endStr := c.Query("end_date"); endStr != "" {
		parsed, err := dto.ParseDate(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("end_date must be a YYYY-MM-DD date")
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -(days - 1))
	if startStr := c.Query("start_date"); startStr != "" {
		parsed, err := dto.ParseDate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("start_date must be a YYYY-MM-DD date")
		}
		start = parsed
	}
	return start, end, nil
}
