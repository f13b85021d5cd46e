package services

import (
	"context"
	"errors"

	"starwars/internal/apperr"
	"starwars/internal/models"
	"starwars/internal/repositories"
)

// PlanetService handles business logic related to planets.
type PlanetService struct {
	repo repositories.PlanetRepository
}

// NewPlanetService creates a new PlanetService.
func NewPlanetService(repo repositories.PlanetRepository) *PlanetService {
	return &PlanetService{
		repo: repo,
	}
}

func (s *PlanetService) GetAllPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.repo.GetAll(ctx)
}

func (s *PlanetService) GetPlanetByID(ctx context.Context, id uint) (*models.Planet, error) {
	planet, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("Planet not found")
	}
	return planet, err
}

func (s *PlanetService) CreatePlanet(ctx context.Context, planet *models.Planet) error {
	return s.repo.Create(ctx, planet)
}
