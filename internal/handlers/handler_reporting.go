package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/middleware"
	"github.com/famstack/family_account_app/internal/utils/fx"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the dashboard reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.getMonthlyReport)
		reports.GET("/categories", h.getCategoryReport)
		reports.GET("/members", h.getMemberReport)
		reports.GET("/trend", h.getTrendReport)
	}
}

// getMonthlyReport returns income/expense per month for ?year= (default: the
// current year).
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year := time.Now().UTC().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1970 || y > 9999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a four-digit year"})
			return
		}
		year = y
	}

	data, err := h.reportingService.MonthlyReport(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to build monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(year, data))
}

// getCategoryReport returns the per-category breakdown of ?type= (default
// expense) over ?start_date=&end_date= (default: the current month).
func (h *reportingHandler) getCategoryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categoryType := domain.CategoryType(c.DefaultQuery("type", string(domain.Expense)))
	start, end, err := reportPeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.reportingService.CategoryReport(c.Request.Context(), categoryType, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build category report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build category report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryReportResponse(categoryType, rows, dto.FormatDate(start), dto.FormatDate(end)))
}

// getMemberReport returns the per-member breakdown over a period.
func (h *reportingHandler) getMemberReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, err := reportPeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.reportingService.MemberReport(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to build member report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build member report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberReportResponse(data, dto.FormatDate(start), dto.FormatDate(end)))
}

// getTrendReport returns the per-day breakdown for the last ?days= days
// (default 30), or explicit ?start_date=/?end_date= bounds.
func (h *reportingHandler) getTrendReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, err := trendWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.reportingService.TrendReport(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build trend report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build trend report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTrendReportResponse(data, dto.FormatDate(start), dto.FormatDate(end)))
}

const defaultTrendDays = 30

// trendWindow resolves the trend range: explicit ?start_date=/?end_date=
// bounds win (missing bounds default as in reportPeriod), otherwise the last
// ?days= days ending today.
func trendWindow(c *gin.Context) (time.Time, time.Time, error) {
	if c.Query("start_date") != "" || c.Query("end_date") != "" {
		return reportPeriod(c)
	}

	days := defaultTrendDays
	if daysStr := c.Query("days"); daysStr != "" {
		d, err := strconv.Atoi(daysStr)
		if err != nil || d < 1 || d > 3650 {
			return time.Time{}, time.Time{}, errors.New("days must be an integer between 1 and 3650")
		}
		days = d
	}

	end := fx.DateOnly(time.Now().UTC())
	start := end.AddDate(0, 0, -(days - 1))
	return start, end, nil
}

// reportPeriod resolves ?start_date=&end_date=. Each bound defaults
// independently: start to the first day of the current month, end to its
// last day.
func reportPeriod(c *gin.Context) (time.Time, time.Time, error) {
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
