package repositories

import (
	"context"

	"starwars/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves all users from the database.
func (r *GORMUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.db, "users")
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return findByID[models.User](ctx, r.db, "user", id)
}

// Create creates a new user in the database. The password is hashed by the model hook.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	return create(ctx, r.db, "user", user)
}
