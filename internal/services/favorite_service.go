package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"starwars/internal/apperr"
	"starwars/internal/models"
	"starwars/internal/repositories"

	"github.com/rs/zerolog"
)

// Favorite event names.
const (
	EventFavoriteCreated = "favorite.created"
	EventFavoriteDeleted = "favorite.deleted"
)

// EventPublisher delivers favorite events to other systems.
type EventPublisher interface {
	PublishJSON(payload any) error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishJSON(any) error { return nil }

// EventObserver is told about every publish attempt; metrics.Metrics satisfies it.
type EventObserver interface {
	ObserveFavoriteEvent(event string, err error)
}

// FavoriteEvent is the message published when a favorite is added or removed.
type FavoriteEvent struct {
	Event    string                  `json:"event"`
	Favorite models.FavoriteResponse `json:"favorite"`
	Time     time.Time               `json:"time"`
}

// FavoriteTarget is what a favorite points to.
type FavoriteTarget int

const (
	TargetPlanet FavoriteTarget = iota
	TargetPeople
)

func (t FavoriteTarget) String() string {
	if t == TargetPeople {
		return "people"
	}
	return "planet"
}

// FavoriteService handles business logic related to favorites.
type FavoriteService struct {
	repo      repositories.FavoriteRepository
	publisher EventPublisher
	observer  EventObserver
	log       zerolog.Logger
}

// NewFavoriteService creates a new FavoriteService. A nil publisher disables events;
// a nil observer disables event metrics.
func NewFavoriteService(repo repositories.FavoriteRepository, publisher EventPublisher, observer EventObserver, log zerolog.Logger) *FavoriteService {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &FavoriteService{
		repo:      repo,
		publisher: publisher,
		observer:  observer,
		log:       log,
	}
}

// GetAllFavorites retrieves every favorite of every user.
func (s *FavoriteService) GetAllFavorites(ctx context.Context) ([]models.Favorite, error) {
	return s.repo.GetAll(ctx)
}

// AddFavorite stores a favorite of userID for the target with targetID.
// Neither id is checked for existence.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID uint, target FavoriteTarget, targetID uint) (*models.Favorite, error) {
	favorite := &models.Favorite{UserID: userID}
	id := targetID
	if target == TargetPeople {
		favorite.PeopleID = &id
	} else {
		favorite.PlanetID = &id
	}

	if err := s.repo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	s.publish(EventFavoriteCreated, favorite)
	return favorite, nil
}

// RemoveFavorite deletes the lowest-id favorite of the target; userID, when not nil,
// restricts the match to that user.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, target FavoriteTarget, targetID uint, userID *uint) (*models.Favorite, error) {
	id := targetID
	filter := repositories.FavoriteFilter{UserID: userID}
	if target == TargetPeople {
		filter.PeopleID = &id
	} else {
		filter.PlanetID = &id
	}

	favorite, err := s.repo.DeleteFirst(ctx, filter)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("Favorite not found")
	}
	if err != nil {
		return nil, err
	}
	s.publish(EventFavoriteDeleted, favorite)
	return favorite, nil
}

// publish never fails the request: the row is already committed.
func (s *FavoriteService) publish(event string, favorite *models.Favorite) {
	err := s.publisher.PublishJSON(FavoriteEvent{
		Event:    event,
		Favorite: favorite.Serialize(),
		Time:     time.Now().UTC(),
	})
	if s.observer != nil {
		s.observer.ObserveFavoriteEvent(event, err)
	}
	if err != nil {
		s.log.Warn().Err(fmt.Errorf("publish %s: %w", event, err)).Uint("favorite_id", favorite.ID).Msg("favorite event not delivered")
	}
}
