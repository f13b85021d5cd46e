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

func TestPeopleService_GetAllPeople(t *testing.T) {
	mockRepo := new(MockPeopleRepository)
	service := services.NewPeopleService(mockRepo)

	expected := []models.People{
		{ID: 1, Name: "Luke Skywalker", BirthYear: "19BBY", Gender: "male"},
		{ID: 2, Name: "C-3PO", BirthYear: "112BBY", Gender: "n/a"},
	}
	mockRepo.On("GetAll", mock.Anything).Return(expected, nil).Once()

	people, err := service.GetAllPeople(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, people)
	mockRepo.AssertExpectations(t)
}

func TestPeopleService_GetPersonByID(t *testing.T) {
	mockRepo := new(MockPeopleRepository)
	service := services.NewPeopleService(mockRepo)
	ctx := context.Background()

	expected := &models.People{ID: 1, Name: "Luke Skywalker", BirthYear: "19BBY", Gender: "male"}
	mockRepo.On("GetByID", ctx, uint(1)).Return(expected, nil).Once()
	person, err := service.GetPersonByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, person)

	// Absent rows become a 404 application error
	mockRepo.On("GetByID", ctx, uint(99)).Return(nil, fmt.Errorf("person with ID 99: %w", repositories.ErrNotFound)).Once()
	person, err = service.GetPersonByID(ctx, 99)
	assert.Nil(t, person)
	appErr, ok := apperr.As(err)
	if assert.True(t, ok) {
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Person not found", appErr.Message)
	}

	// Storage faults pass through untouched
	mockRepo.On("GetByID", ctx, uint(7)).Return(nil, fmt.Errorf("database is locked")).Once()
	_, err = service.GetPersonByID(ctx, 7)
	assert.EqualError(t, err, "database is locked")
	_, ok = apperr.As(err)
	assert.False(t, ok)

	mockRepo.AssertExpectations(t)
}

func TestPeopleService_CreatePerson(t *testing.T) {
	mockRepo := new(MockPeopleRepository)
	service := services.NewPeopleService(mockRepo)

	person := &models.People{Name: "Leia Organa", BirthYear: "19BBY", Gender: "female"}
	mockRepo.On("Create", mock.Anything, person).Return(nil).Once()
	assert.NoError(t, service.CreatePerson(context.Background(), person))

	mockRepo.On("Create", mock.Anything, person).Return(fmt.Errorf("database error")).Once()
	err := service.CreatePerson(context.Background(), person)
	assert.ErrorContains(t, err, "database error")
	mockRepo.AssertExpectations(t)
}
