package handlers

import "github.com/gofiber/fiber/v2"

// HandleRoot is the liveness check.
// GET /
func (h *Handlers) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "ShopSight Analytics API",
		"version": "1.0.0",
	})
}

// HandleHealth reports configuration and dataset readiness.
// GET /health
func (h *Handlers) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":            "healthy",
		"gemini_configured": h.geminiConfigured,
		"products":          h.snap.NumProducts(),
		"sales_records":     h.snap.NumSalesRecords(),
	})
}
