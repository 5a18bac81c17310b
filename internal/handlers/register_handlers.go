package handlers

import (
	portssvc "github.com/daftari-app/daftari/internal/core/ports/services"
	"github.com/daftari-app/daftari/internal/middleware"
	"github.com/daftari-app/daftari/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error payload returned by handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies
// through service interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes (login is rate limited)
	registerAuthRoutes(r, cfg, services.Auth)

	// Everything else sits behind the session middleware
	v1 := r.Group("/api/v1", middleware.SessionAuthMiddleware(cfg.SessionSecret))
	registerSaleRoutes(v1, services.Sale, services.Export)
	registerDebtRoutes(v1, services.Debt, services.Export)
	registerExpenseRoutes(v1, services.Expense, services.Export)
	registerSettingsRoutes(v1, services.Settings)
	registerBackupRoutes(v1, services.Backup)
	registerReportingRoutes(v1, services.Reporting)
	registerSessionRoutes(v1, services.Auth)
}
