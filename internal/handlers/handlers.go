package handlers

import (
	"errors"
	"strconv"

	"starwars/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"
)

// Messages shared by the create endpoints.
const (
	msgInvalidBody    = "Invalid request body"
	msgMissingFields  = "Missing required fields"
	msgUserIDRequired = "user_id is required"
	msgInvalidUserID  = "user_id must be a positive integer"
)

// validate is safe for concurrent use and caches struct metadata, so one instance is shared.
var validate = validator.New()

// parseBody decodes the request body into out. An empty body leaves out untouched,
// so that a missing body fails validation instead of parsing.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperr.BadRequest(msgInvalidBody)
	}
	return nil
}

// bindAndValidate parses the body and runs the validate tags; any failing tag answers
// 400 with message.
func bindAndValidate(c *fiber.Ctx, out any, message string) error {
	if err := parseBody(c, out); err != nil {
		return err
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return apperr.BadRequest(message)
		}
		return err
	}
	return nil
}

// paramID reads the :id<int> route parameter. The route constraint accepts a sign,
// so "+1" and "-1" are rejected here the same way the router rejects non-integers.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// queryUserID reads the optional ?user_id= query parameter.
func queryUserID(c *fiber.Ctx) (*uint, error) {
	raw := c.Query("user_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return nil, apperr.BadRequest(msgInvalidUserID)
	}
	userID := uint(id)
	return &userID, nil
}

// ErrorHandler maps errors returned by handlers onto JSON responses.
//
//   - *apperr.Error answers with its own status and {"error": message}.
//   - *fiber.Error (unknown route, wrong method) keeps Fiber's status and text.
//   - anything else is logged and answered with a bare 500.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperr.As(err); ok {
			return c.Status(appErr.Status).JSON(appErr.ToMap())
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
			})
		}

		event := log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path())
		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			event = event.Str("request_id", id)
		}
		event.Msg("unhandled error")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": utils.StatusMessage(fiber.StatusInternalServerError),
		})
	}
}
