package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopsight/handlers"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/", h.HandleRoot)
	app.Get("/health", h.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Post("/search", h.HandleSearch)

	products := api.Group("/products")
	products.Get("/:articleId/sales", h.HandleGetSales)
	products.Get("/:articleId/forecast", h.HandleGetForecast)
	products.Get("/:articleId/segments", h.HandleGetSegments)
	products.Get("/:articleId/insights", h.HandleGetInsights)
}
