package middleware

import (
	"errors"
	"time"

	"starwars/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// UnmatchedPath labels requests no route answered.
const UnmatchedPath = "unmatched"

// Metrics records request count and latency labelled by route pattern, not raw path,
// so that /people/1 and /people/2 share a series.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		// c.Method() points into the request buffer, which fasthttp reuses.
		m.ObserveHTTPRequest(routePath(c, err), utils.CopyString(c.Method()), statusFromError(c, err), time.Since(start))
		return err
	}
}

// routePath is the matched route pattern. Router 404/405 leave c.Route() on the
// last middleware, so those get UnmatchedPath.
func routePath(c *fiber.Ctx, err error) string {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) &&
		(fiberErr.Code == fiber.StatusNotFound || fiberErr.Code == fiber.StatusMethodNotAllowed) {
		return UnmatchedPath
	}
	return c.Route().Path
}
