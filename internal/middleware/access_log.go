package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// AccessLog writes one structured line per request.
// 5xx is logged at error level, 4xx at warn, everything else at info.
func AccessLog(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := statusFromError(c, err)

		var e *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			e = log.Error()
		case status >= fiber.StatusBadRequest:
			e = log.Warn()
		default:
			e = log.Info()
		}

		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
			e = e.Str("request_id", id)
		}

		e.
			Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Method()).
			Str("uri", c.OriginalURL()).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent)).
			Msg("API")

		return err
	}
}
