package handlers

import (
	"starwars/internal/models"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteRequest is the body of POST /favorite/{planet,people}/:id.
type FavoriteRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

// FavoriteHandler handles HTTP requests for favorites.
type FavoriteHandler struct {
	service *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// RegisterRoutes registers the favorite routes with the Fiber app.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/favorites", h.HandleGetFavorites)

	favoriteRoutes := router.Group("/favorite")
	favoriteRoutes.Post("/planet/:id<int>", h.HandleAddFavorite(services.TargetPlanet))
	favoriteRoutes.Post("/people/:id<int>", h.HandleAddFavorite(services.TargetPeople))
	favoriteRoutes.Delete("/planet/:id<int>", h.HandleRemoveFavorite(services.TargetPlanet))
	favoriteRoutes.Delete("/people/:id<int>", h.HandleRemoveFavorite(services.TargetPeople))
}

// HandleGetFavorites lists the favorites of every user.
func (h *FavoriteHandler) HandleGetFavorites(c *fiber.Ctx) error {
	favorites, err := h.service.GetAllFavorites(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(models.SerializeAll(favorites, (*models.Favorite).Serialize))
}

// HandleAddFavorite returns the handler that favorites the target in the path for body.user_id.
func (h *FavoriteHandler) HandleAddFavorite(target services.FavoriteTarget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		targetID, err := paramID(c)
		if err != nil {
			return err
		}

		var req FavoriteRequest
		if err := bindAndValidate(c, &req, msgUserIDRequired); err != nil {
			return err
		}

		favorite, err := h.service.AddFavorite(c.UserContext(), req.UserID, target, targetID)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(favorite.Serialize())
	}
}

// HandleRemoveFavorite returns the handler that deletes one favorite of the target in the path.
// ?user_id=N limits the deletion to that user's favorite.
func (h *FavoriteHandler) HandleRemoveFavorite(target services.FavoriteTarget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		targetID, err := paramID(c)
		if err != nil {
			return err
		}
		userID, err := queryUserID(c)
		if err != nil {
			return err
		}

		if _, err := h.service.RemoveFavorite(c.UserContext(), target, targetID, userID); err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"done": true,
		})
	}
}
