package repositories

import (
	"context"

	"starwars/internal/models"

	"gorm.io/gorm"
)

// GORMPeopleRepository is a GORM implementation of PeopleRepository.
type GORMPeopleRepository struct {
	db *gorm.DB
}

// NewGORMPeopleRepository creates a new instance of GORMPeopleRepository.
func NewGORMPeopleRepository(db *gorm.DB) *GORMPeopleRepository {
	return &GORMPeopleRepository{
		db: db,
	}
}

// GetAll retrieves all people ordered by id.
func (r *GORMPeopleRepository) GetAll(ctx context.Context) ([]models.People, error) {
	return findAll[models.People](ctx, r.db, "people")
}

// GetByID retrieves a single person by id.
func (r *GORMPeopleRepository) GetByID(ctx context.Context, id uint) (*models.People, error) {
	return findByID[models.People](ctx, r.db, "person", id)
}

// Create inserts a person; the database assigns the id.
func (r *GORMPeopleRepository) Create(ctx context.Context, person *models.People) error {
	return create(ctx, r.db, "person", person)
}
