package services_test

import (
	"context"
	"fmt"
	"testing"

	"starwars/internal/apperr"
	"starwars/internal/models"
	"starwars/internal/repositories"
	"starwars/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlanetService(t *testing.T) {
	mockRepo := new(MockPlanetRepository)
	service := services.NewPlanetService(mockRepo)
	ctx := context.Background()

	tatooine := models.Planet{ID: 1, Name: "Tatooine", Climate: "arid", Population: 200000}
	mockRepo.On("GetAll", ctx).Return([]models.Planet{tatooine}, nil).Once()
	planets, err := service.GetAllPlanets(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []models.Planet{tatooine}, planets)

	mockRepo.On("GetByID", ctx, uint(1)).Return(&tatooine, nil).Once()
	planet, err := service.GetPlanetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, &tatooine, planet)

	mockRepo.On("GetByID", ctx, uint(2)).Return(nil, fmt.Errorf("planet with ID 2: %w", repositories.ErrNotFound)).Once()
	_, err = service.GetPlanetByID(ctx, 2)
	appErr, ok := apperr.As(err)
	if assert.True(t, ok) {
		assert.Equal(t, "Planet not found", appErr.Message)
	}

	hoth := &models.Planet{Name: "Hoth", Climate: "frozen", Population: 1}
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Planet")).Return(nil).Once()
	assert.NoError(t, service.CreatePlanet(ctx, hoth))

	mockRepo.AssertExpectations(t)
}

func TestUserService_GetAllUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	users := []models.User{{ID: 1, Email: "luke@rebellion.org", IsActive: true}}
	mockRepo.On("GetAll", mock.Anything).Return(users, nil).Once()

	got, err := service.GetAllUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, users, got)
	mockRepo.AssertExpectations(t)
}
