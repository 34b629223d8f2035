package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/famstack/family_account_app/internal/apperrors"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles HTTP requests for currency exchange records.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es}
}

// registerExchangeRoutes registers routes related to currency exchanges.
func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)

	exchanges := rg.Group("/exchanges")
	{
		exchanges.POST("", h.recordExchange)
		exchanges.GET("/history", h.listExchangeHistory)
	}
}

// recordExchange records a conversion between two currency buckets.
func (h *exchangeHandler) recordExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger.Info("Received request to record exchange",
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.Any("from_amount", req.FromAmount),
	)

	recorded, err := h.exchangeService.RecordExchange(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error recording exchange", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Unknown currency in exchange", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record exchange", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record exchange"})
		}
		return
	}

	logger.Info("Exchange recorded", slog.String("exchange_id", recorded.ExchangeID))
	c.JSON(http.StatusCreated, dto.ToExchangeResponse(recorded))
}

// listExchangeHistory returns the most recent exchange records, newest first.
func (h *exchangeHandler) listExchangeHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 1000"})
			return
		}
		limit = l
	}

	history, err := h.exchangeService.ListExchangeHistory(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list exchange history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeResponse(history))
}
