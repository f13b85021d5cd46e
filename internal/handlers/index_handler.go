package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports whether the store is reachable.
type HealthCheck func(ctx context.Context) error

// IndexHandler serves the welcome message and the health check.
type IndexHandler struct {
	check HealthCheck
}

// NewIndexHandler creates a new IndexHandler. A nil check always reports healthy.
func NewIndexHandler(check HealthCheck) *IndexHandler {
	return &IndexHandler{
		check: check,
	}
}

// RegisterRoutes registers / and /health.
func (h *IndexHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/health", h.HandleHealth)
}

// HandleIndex greets the client.
func (h *IndexHandler) HandleIndex(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Welcome to the Star Wars API",
	})
}

// HandleHealth answers 200 when the database answers a ping, 503 otherwise.
func (h *IndexHandler) HandleHealth(c *fiber.Ctx) error {
	status, database, code := "healthy", "up", fiber.StatusOK
	if h.check != nil {
		if err := h.check(c.UserContext()); err != nil {
			status, database, code = "unhealthy", "down", fiber.StatusServiceUnavailable
		}
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"database": database,
		"time":     time.Now().Format(time.RFC3339),
	})
}
