package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"shopsight/models"
)

// historyWindowDays is the history window fed into forecasting and insights.
const historyWindowDays = 90

// HandleGetSales returns the historical sales series for a product.
// GET /api/products/:articleId/sales?days=90
func (h *Handlers) HandleGetSales(c *fiber.Ctx) error {
	articleID := c.Params("articleId")
	days := c.QueryInt("days", historyWindowDays)
	if days <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "days must be positive"})
	}

	product, ok := h.snap.Product(articleID)
	if !ok {
		return productNotFound(c)
	}

	records, err := h.snap.History(articleID, days)
	if err != nil {
		return productNotFound(c)
	}

	resp := models.SalesResponse{
		ArticleID:   articleID,
		ProductName: product.Name,
		Data:        make([]models.SalesPoint, 0, len(records)),
	}
	for _, rec := range records {
		resp.Data = append(resp.Data, models.SalesPoint{
			Date:      rec.Date.Format("2006-01-02"),
			Revenue:   rec.Revenue,
			UnitsSold: rec.UnitsSold,
		})
		resp.TotalRevenue += rec.Revenue
		resp.TotalUnits += rec.UnitsSold
	}
	return c.JSON(fiber.Map{"status": "success", "data": resp})
}

// HandleGetForecast projects demand for a product.
// GET /api/products/:articleId/forecast?days=30
func (h *Handlers) HandleGetForecast(c *fiber.Ctx) error {
	articleID := c.Params("articleId")
	days := c.QueryInt("days", 30)
	if days <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "days must be positive"})
	}

	series, err := h.snap.Series(articleID, historyWindowDays)
	if err != nil {
		return productNotFound(c)
	}

	points, method := h.forecast.Forecast(series, days)
	if points == nil {
		points = []models.ForecastPoint{}
	}
	return c.JSON(fiber.Map{"status": "success", "data": models.ForecastResponse{
		ArticleID: articleID,
		Forecast:  points,
		Method:    method,
	}})
}

// HandleGetSegments returns the buyer personas for a product's category.
// GET /api/products/:articleId/segments
func (h *Handlers) HandleGetSegments(c *fiber.Ctx) error {
	articleID := c.Params("articleId")

	product, ok := h.snap.Product(articleID)
	if !ok {
		return productNotFound(c)
	}

	return c.JSON(fiber.Map{"status": "success", "data": models.SegmentsResponse{
		ArticleID: articleID,
		Segments:  h.segments.SegmentsFor(product),
	}})
}

// HandleGetInsights returns the narrative summary and findings for a product.
// GET /api/products/:articleId/insights
func (h *Handlers) HandleGetInsights(c *fiber.Ctx) error {
	articleID := c.Params("articleId")

	product, ok := h.snap.Product(articleID)
	if !ok {
		return productNotFound(c)
	}
	series, err := h.snap.Series(articleID, historyWindowDays)
	if err != nil {
		return productNotFound(c)
	}

	summary, findings := h.insights.Generate(c.Context(), product, series)
	return c.JSON(fiber.Map{"status": "success", "data": models.InsightsResponse{
		ArticleID: articleID,
		Summary:   summary,
		Insights:  findings,
	}})
}

func productNotFound(c *fiber.Ctx) error {
	log.Printf("Product not found: %s", c.Params("articleId"))
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found or no sales data available"})
}
