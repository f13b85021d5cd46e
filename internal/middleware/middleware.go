// Package middleware holds the Fiber middleware shared by every route.
package middleware

import (
	"errors"

	"starwars/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// statusFromError predicts the status the error handler will answer with.
// When a handler returns an error the response status is not written yet, so
// middleware that runs after c.Next() has to derive it from the error itself.
func statusFromError(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if appErr, ok := apperr.As(err); ok {
		return appErr.Status
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
