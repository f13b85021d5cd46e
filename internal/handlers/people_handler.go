package handlers

import (
	"starwars/internal/models"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CreatePeopleRequest is the body of POST /people.
type CreatePeopleRequest struct {
	Name      string `json:"name" validate:"required"`
	BirthYear string `json:"birth_year" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
}

// PeopleHandler handles HTTP requests for people.
type PeopleHandler struct {
	service *services.PeopleService
}

// NewPeopleHandler creates a new PeopleHandler.
func NewPeopleHandler(service *services.PeopleService) *PeopleHandler {
	return &PeopleHandler{
		service: service,
	}
}

// RegisterRoutes registers the people routes with the Fiber app.
func (h *PeopleHandler) RegisterRoutes(router fiber.Router) {
	peopleRoutes := router.Group("/people")
	peopleRoutes.Get("/", h.HandleGetPeople)
	peopleRoutes.Get("/:id<int>", h.HandleGetPerson)
	peopleRoutes.Post("/", h.HandleCreatePerson)
}

// HandleGetPeople lists every person.
func (h *PeopleHandler) HandleGetPeople(c *fiber.Ctx) error {
	people, err := h.service.GetAllPeople(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(models.SerializeAll(people, (*models.People).Serialize))
}

// HandleGetPerson returns one person or 404.
func (h *PeopleHandler) HandleGetPerson(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	person, err := h.service.GetPersonByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(person.Serialize())
}

// HandleCreatePerson validates the body and stores a new person.
func (h *PeopleHandler) HandleCreatePerson(c *fiber.Ctx) error {
	var req CreatePeopleRequest
	if err := bindAndValidate(c, &req, msgMissingFields); err != nil {
		return err
	}

	person := &models.People{
		Name:      req.Name,
		BirthYear: req.BirthYear,
		Gender:    req.Gender,
	}
	if err := h.service.CreatePerson(c.UserContext(), person); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(person.Serialize())
}
