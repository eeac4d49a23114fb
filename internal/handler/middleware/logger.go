package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LoggerMiddleware logs HTTP requests and responses, tagging each request
// with a generated id that is also echoed back as X-Request-ID.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := uuid.NewString()
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		log.Printf("[%s] %s %s - %d in %v",
			requestID,
			c.Method(),
			c.Path(),
			status,
			latency,
		)

		return err
	}
}
