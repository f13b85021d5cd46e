package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"starwars/internal/models"
)

// memoryTable is an in-memory table with auto-increment ids.
type memoryTable[T any] struct {
	mu     sync.RWMutex
	rows   map[uint]T
	nextID uint
	name   string
	id     func(*T) *uint
}

func newMemoryTable[T any](name string, id func(*T) *uint) *memoryTable[T] {
	return &memoryTable[T]{
		rows:   make(map[uint]T),
		nextID: 1,
		name:   name,
		id:     id,
	}
}

// all returns every row ordered by id.
func (t *memoryTable[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	list := make([]T, 0, len(ids))
	for _, id := range ids {
		list = append(list, t.rows[id])
	}
	return list
}

func (t *memoryTable[T]) get(id uint) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, fmt.Errorf("%s with ID %d: %w", t.name, id, ErrNotFound)
	}
	return &row, nil
}

func (t *memoryTable[T]) insert(row *T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	*t.id(row) = t.nextID
	t.nextID++
	t.rows[*t.id(row)] = *row
}

// deleteFirst removes the lowest-id row accepted by match.
func (t *memoryTable[T]) deleteFirst(match func(*T) bool) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var (
		found T
		ok    bool
	)
	for id, row := range t.rows {
		if !match(&row) {
			continue
		}
		if !ok || id < *t.id(&found) {
			found, ok = row, true
		}
	}
	if ok {
		delete(t.rows, *t.id(&found))
	}
	return &found, ok
}

// NewMemoryRepositories returns repositories that keep everything in process memory.
// Data does not survive a restart.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		People:    NewMemoryPeopleRepository(),
		Planets:   NewMemoryPlanetRepository(),
		Users:     NewMemoryUserRepository(),
		Favorites: NewMemoryFavoriteRepository(),
	}
}

// MemoryPeopleRepository is an in-memory implementation of PeopleRepository.
type MemoryPeopleRepository struct {
	table *memoryTable[models.People]
}

// NewMemoryPeopleRepository creates a new instance of MemoryPeopleRepository.
func NewMemoryPeopleRepository() *MemoryPeopleRepository {
	return &MemoryPeopleRepository{
		table: newMemoryTable("person", func(p *models.People) *uint { return &p.ID }),
	}
}

func (r *MemoryPeopleRepository) GetAll(_ context.Context) ([]models.People, error) {
	return r.table.all(), nil
}

func (r *MemoryPeopleRepository) GetByID(_ context.Context, id uint) (*models.People, error) {
	return r.table.get(id)
}

func (r *MemoryPeopleRepository) Create(_ context.Context, person *models.People) error {
	r.table.insert(person)
	return nil
}

// MemoryPlanetRepository is an in-memory implementation of PlanetRepository.
type MemoryPlanetRepository struct {
	table *memoryTable[models.Planet]
}

// NewMemoryPlanetRepository creates a new instance of MemoryPlanetRepository.
func NewMemoryPlanetRepository() *MemoryPlanetRepository {
	return &MemoryPlanetRepository{
		table: newMemoryTable("planet", func(p *models.Planet) *uint { return &p.ID }),
	}
}

func (r *MemoryPlanetRepository) GetAll(_ context.Context) ([]models.Planet, error) {
	return r.table.all(), nil
}

func (r *MemoryPlanetRepository) GetByID(_ context.Context, id uint) (*models.Planet, error) {
	return r.table.get(id)
}

func (r *MemoryPlanetRepository) Create(_ context.Context, planet *models.Planet) error {
	r.table.insert(planet)
	return nil
}

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	table *memoryTable[models.User]
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		table: newMemoryTable("user", func(u *models.User) *uint { return &u.ID }),
	}
}

func (r *MemoryUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	return r.table.all(), nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	return r.table.get(id)
}

// Create hashes the password the same way the GORM hook does, then stores the user.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	if err := user.HashPassword(); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.table.insert(user)
	return nil
}

// MemoryFavoriteRepository is an in-memory implementation of FavoriteRepository.
type MemoryFavoriteRepository struct {
	table *memoryTable[models.Favorite]
}

// NewMemoryFavoriteRepository creates a new instance of MemoryFavoriteRepository.
func NewMemoryFavoriteRepository() *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{
		table: newMemoryTable("favorite", func(f *models.Favorite) *uint { return &f.ID }),
	}
}

func (r *MemoryFavoriteRepository) GetAll(_ context.Context) ([]models.Favorite, error) {
	return r.table.all(), nil
}

func (r *MemoryFavoriteRepository) Create(_ context.Context, favorite *models.Favorite) error {
	r.table.insert(favorite)
	return nil
}

func (r *MemoryFavoriteRepository) DeleteFirst(_ context.Context, filter FavoriteFilter) (*models.Favorite, error) {
	if filter.PlanetID == nil && filter.PeopleID == nil {
		return nil, fmt.Errorf("favorite filter needs a planet or people id")
	}
	favorite, ok := r.table.deleteFirst(func(f *models.Favorite) bool {
		if filter.PlanetID != nil && !sameID(f.PlanetID, *filter.PlanetID) {
			return false
		}
		if filter.PeopleID != nil && !sameID(f.PeopleID, *filter.PeopleID) {
			return false
		}
		return filter.UserID == nil || f.UserID == *filter.UserID
	})
	if !ok {
		return nil, fmt.Errorf("favorite: %w", ErrNotFound)
	}
	return favorite, nil
}

func sameID(ref *uint, id uint) bool {
	return ref != nil && *ref == id
}
