package repositories

import (
	"context"
	"errors"
	"fmt"

	"starwars/internal/models"

	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// GetAll retrieves every favorite of every user.
func (r *GORMFavoriteRepository) GetAll(ctx context.Context) ([]models.Favorite, error) {
	return findAll[models.Favorite](ctx, r.db, "favorites")
}

// Create inserts a favorite without checking the referenced rows exist.
func (r *GORMFavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return create(ctx, r.db, "favorite", favorite)
}

// DeleteFirst deletes the lowest-id favorite matching filter.
func (r *GORMFavoriteRepository) DeleteFirst(ctx context.Context, filter FavoriteFilter) (*models.Favorite, error) {
	if filter.PlanetID == nil && filter.PeopleID == nil {
		return nil, fmt.Errorf("favorite filter needs a planet or people id")
	}

	query := r.db.WithContext(ctx)
	if filter.PlanetID != nil {
		query = query.Where("planet_id = ?", *filter.PlanetID)
	}
	if filter.PeopleID != nil {
		query = query.Where("people_id = ?", *filter.PeopleID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var favorite models.Favorite
	if err := query.Order("id").First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}

	res := r.db.WithContext(ctx).Delete(&models.Favorite{}, favorite.ID)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Removed by a concurrent request between the lookup and the delete.
		return nil, fmt.Errorf("favorite with ID %d: %w", favorite.ID, ErrNotFound)
	}
	return &favorite, nil
}
