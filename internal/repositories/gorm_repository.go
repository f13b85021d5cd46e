package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NewGORMRepositories wires every GORM repository to the same connection.
func NewGORMRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		People:    NewGORMPeopleRepository(db),
		Planets:   NewGORMPlanetRepository(db),
		Users:     NewGORMUserRepository(db),
		Favorites: NewGORMFavoriteRepository(db),
	}
}

// findAll and findByID are shared by every GORM repository.
func findAll[T any](ctx context.Context, db *gorm.DB, entity string) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %s: %w", entity, err)
	}
	return rows, nil
}

func findByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s with ID %d: %w", entity, id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by ID %d: %w", entity, id, err)
	}
	return &row, nil
}

func create[T any](ctx context.Context, db *gorm.DB, entity string, row *T) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", entity, err)
	}
	return nil
}
