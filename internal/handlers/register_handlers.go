// Package handlers exposes the read-only reporting API over HTTP. Every
// mutating operation lives on the textual command protocol; the API serves
// login, ledger, catalog and chat summaries to back-office tooling.
package handlers

import (
	"log/slog"

	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/middleware"
	"github.com/retailcore/branch_retail_app/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	logger *slog.Logger,
) {
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(cors.Default())

	registerHomeRoutes(r)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Authenticated read-only report routes
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group behind the auth middleware.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerReportRoutes(v1, services)
}
