package repositories

import (
	"context"
	"errors"

	"starwars/internal/models"
)

// ErrNotFound is returned (wrapped) when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// PeopleRepository defines the interface for people data access.
type PeopleRepository interface {
	GetAll(ctx context.Context) ([]models.People, error)
	GetByID(ctx context.Context, id uint) (*models.People, error)
	Create(ctx context.Context, person *models.People) error
}

// PlanetRepository defines the interface for planet data access.
type PlanetRepository interface {
	GetAll(ctx context.Context) ([]models.Planet, error)
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
	Create(ctx context.Context, planet *models.Planet) error
}

// UserRepository defines the interface for user data access.
// Create is only used when seeding; users are never created over HTTP.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// FavoriteFilter selects the favorite to delete. Exactly one of PlanetID and PeopleID is set.
// A non-nil UserID narrows the match to that user's favorites.
type FavoriteFilter struct {
	PlanetID *uint
	PeopleID *uint
	UserID   *uint
}

// FavoriteRepository defines the interface for favorite data access.
type FavoriteRepository interface {
	GetAll(ctx context.Context) ([]models.Favorite, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	// DeleteFirst removes the matching favorite with the lowest id and returns it.
	DeleteFirst(ctx context.Context, filter FavoriteFilter) (*models.Favorite, error)
}

// Repositories groups every repository the application needs.
type Repositories struct {
	People    PeopleRepository
	Planets   PlanetRepository
	Users     UserRepository
	Favorites FavoriteRepository
}
