package services

import (
	"context"
	"errors"

	"starwars/internal/apperr"
	"starwars/internal/models"
	"starwars/internal/repositories"
)

// PeopleService handles business logic related to people.
type PeopleService struct {
	repo repositories.PeopleRepository
}

// NewPeopleService creates a new PeopleService.
func NewPeopleService(repo repositories.PeopleRepository) *PeopleService {
	return &PeopleService{
		repo: repo,
	}
}

// GetAllPeople retrieves all people.
func (s *PeopleService) GetAllPeople(ctx context.Context) ([]models.People, error) {
	return s.repo.GetAll(ctx)
}

// GetPersonByID retrieves a single person, or a 404 apperr when there is none.
func (s *PeopleService) GetPersonByID(ctx context.Context, id uint) (*models.People, error) {
	person, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("Person not found")
	}
	return person, err
}

// CreatePerson stores a new person. Input is validated by the caller.
func (s *PeopleService) CreatePerson(ctx context.Context, person *models.People) error {
	return s.repo.Create(ctx, person)
}
