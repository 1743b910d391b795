// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware requirements.
package routes

import (
	"fraudlens/internal/handlers"
	"fraudlens/internal/middleware"
	"fraudlens/internal/repositories/cache"
	"fraudlens/internal/services/benford"
	"fraudlens/internal/services/dashboard"
	"fraudlens/internal/services/risk"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires services into handlers and registers all routes.
func SetupRoutes(app *fiber.App, reportCache cache.Cache, sampler *benford.Sampler) {
	// Initialize services in dependency order
	riskService := risk.NewService(risk.NewPrometheusCollector())
	dashboardService := dashboard.NewService(riskService, sampler, reportCache, nil)

	analysisHandler := handlers.NewAnalysisHandler(dashboardService)
	riskHandler := handlers.NewRiskHandler(riskService)
	benfordHandler := handlers.NewBenfordHandler(sampler, nil)

	app.Use(middleware.RequestID())

	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")
	api.Post("/analysis", analysisHandler.Analyze)
	api.Post("/risk/evaluate", riskHandler.Evaluate)
	api.Get("/benford", benfordHandler.Sample)
}
