package handlers

import (
	"starwars/internal/models"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler serves the read-only user listing.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers GET /users.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users", h.HandleGetUsers)
}

// HandleGetUsers lists every user without their password.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(models.SerializeAll(users, (*models.User).Serialize))
}
