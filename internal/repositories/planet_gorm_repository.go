package repositories

import (
	"context"

	"starwars/internal/models"

	"gorm.io/gorm"
)

// GORMPlanetRepository is a GORM implementation of PlanetRepository.
type GORMPlanetRepository struct {
	db *gorm.DB
}

// NewGORMPlanetRepository creates a new instance of GORMPlanetRepository.
func NewGORMPlanetRepository(db *gorm.DB) *GORMPlanetRepository {
	return &GORMPlanetRepository{
		db: db,
	}
}

func (r *GORMPlanetRepository) GetAll(ctx context.Context) ([]models.Planet, error) {
	return findAll[models.Planet](ctx, r.db, "planets")
}

func (r *GORMPlanetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	return findByID[models.Planet](ctx, r.db, "planet", id)
}

func (r *GORMPlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	return create(ctx, r.db, "planet", planet)
}
