package services_test

import (
	"context"

	"starwars/internal/models"
	"starwars/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockPeopleRepository is a mock implementation of repositories.PeopleRepository
type MockPeopleRepository struct {
	mock.Mock
}

func (m *MockPeopleRepository) GetAll(ctx context.Context) ([]models.People, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.People), args.Error(1)
}

func (m *MockPeopleRepository) GetByID(ctx context.Context, id uint) (*models.People, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.People), args.Error(1)
}

func (m *MockPeopleRepository) Create(ctx context.Context, person *models.People) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// MockPlanetRepository is a mock implementation of repositories.PlanetRepository
type MockPlanetRepository struct {
	mock.Mock
}

func (m *MockPlanetRepository) GetAll(ctx context.Context) ([]models.Planet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Planet), args.Error(1)
}

func (m *MockPlanetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Planet), args.Error(1)
}

func (m *MockPlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	args := m.Called(ctx, planet)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockFavoriteRepository is a mock implementation of repositories.FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) GetAll(ctx context.Context) ([]models.Favorite, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) DeleteFirst(ctx context.Context, filter repositories.FavoriteFilter) (*models.Favorite, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(payload any) error {
	args := m.Called(payload)
	return args.Error(0)
}

// MockObserver is a mock implementation of services.EventObserver
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) ObserveFavoriteEvent(event string, err error) {
	m.Called(event, err)
}
