package handlers

import (
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerRateRoutes(v1, services.Rate)
	registerSummaryRoutes(v1, services.Summary)
	registerExchangeRoutes(v1, services.Exchange)
	registerTransactionRoutes(v1, services.Transaction)
	registerCategoryRoutes(v1, services.Category)
	registerMemberRoutes(v1, services.Member)
	registerReportingRoutes(v1, services.Reporting)
}
