package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"shopsight/models"
)

const defaultSearchLimit = 10

// HandleSearch resolves a natural-language product query.
// POST /api/search
func (h *Handlers) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "limit must not be negative"})
	}
	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}

	log.Printf("Searching for: %s", req.Query)
	results := h.search.Resolve(c.Context(), req.Query, req.Limit)

	return c.JSON(fiber.Map{"status": "success", "data": models.SearchResponse{
		Query:   req.Query,
		Results: results,
		Count:   len(results),
	}})
}
