package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/middleware"
	"github.com/famstack/family_account_app/internal/utils/fx"
	"github.com/gin-gonic/gin"
)

// summaryHandler handles HTTP requests for the multi-currency summary.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

// registerSummaryRoutes registers the summary route.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)
	rg.GET("/summary", h.getSummary)
}

// getSummary computes period and all-time totals. The period is
// ?start_date=&end_date=, each bound defaulting to the current calendar month
// when absent.
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, err := summaryPeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.summaryService.GetSummary(c.Request.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Summary aborted on unknown currency", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to compute summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// summaryPeriod resolves ?start_date=&end_date=. Each bound defaults
// independently: start to the first day of the current month, end to its
// last day.
func summaryPeriod(c *gin.Context) (time.Time, time.Time, error) {
	now := fx.DateOnly(time.Now().UTC())
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if startStr := c.Query("start_date"); startStr != "" {
		parsed, err := dto.ParseDate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("start_date must be a YYYY-MM-DD date")
		}
		start = parsed
	}
	if endStr := c.Query("end_date"); endStr != "" {
		parsed, err := dto.ParseDate(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("end_date must be a YYYY-MM-DD date")
		}
		end = parsed
	}
	return start, end, nil
}
