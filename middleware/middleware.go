package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"shopsight/metrics"
)

// RequestLogger logs every request and records it in the request counter.
func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	route := c.Route().Path
	metrics.ObserveRequest(route, status)
	log.Printf("%s %s -> %d (%s)", c.Method(), c.Path(), status, time.Since(start))
	return err
}
