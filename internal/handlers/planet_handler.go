package handlers

import (
	"starwars/internal/models"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CreatePlanetRequest is the body of POST /planets. A zero population counts as missing.
type CreatePlanetRequest struct {
	Name       string `json:"name" validate:"required"`
	Climate    string `json:"climate" validate:"required"`
	Population int64  `json:"population" validate:"required"`
}

// PlanetHandler handles HTTP requests for planets.
type PlanetHandler struct {
	service *services.PlanetService
}

// NewPlanetHandler creates a new PlanetHandler.
func NewPlanetHandler(service *services.PlanetService) *PlanetHandler {
	return &PlanetHandler{
		service: service,
	}
}

// RegisterRoutes registers the planet routes with the Fiber app.
func (h *PlanetHandler) RegisterRoutes(router fiber.Router) {
	planetRoutes := router.Group("/planets")
	planetRoutes.Get("/", h.HandleGetPlanets)
	planetRoutes.Get("/:id<int>", h.HandleGetPlanet)
	planetRoutes.Post("/", h.HandleCreatePlanet)
}

func (h *PlanetHandler) HandleGetPlanets(c *fiber.Ctx) error {
	planets, err := h.service.GetAllPlanets(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(models.SerializeAll(planets, (*models.Planet).Serialize))
}

func (h *PlanetHandler) HandleGetPlanet(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	planet, err := h.service.GetPlanetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(planet.Serialize())
}

func (h *PlanetHandler) HandleCreatePlanet(c *fiber.Ctx) error {
	var req CreatePlanetRequest
	if err := bindAndValidate(c, &req, msgMissingFields); err != nil {
		return err
	}

	planet := &models.Planet{
		Name:       req.Name,
		Climate:    req.Climate,
		Population: req.Population,
	}
	if err := h.service.CreatePlanet(c.UserContext(), planet); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(planet.Serialize())
}
