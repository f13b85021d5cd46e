// Package seed fills an empty store with a small Star Wars dataset.
package seed

import (
	"context"
	"fmt"

	"starwars/internal/models"
	"starwars/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var validate = validator.New()

// Users are demo accounts; passwords are hashed on insert.
func Users() []models.User {
	return []models.User{
		{Email: "luke@rebellion.org", Password: "usetheforce", IsActive: true},
		{Email: "leia@rebellion.org", Password: "helpmeobiwan", IsActive: true},
	}
}

// People are the first characters of the public SWAPI dataset.
func People() []models.People {
	return []models.People{
		{Name: "Luke Skywalker", BirthYear: "19BBY", Gender: "male"},
		{Name: "C-3PO", BirthYear: "112BBY", Gender: "n/a"},
		{Name: "R2-D2", BirthYear: "33BBY", Gender: "n/a"},
		{Name: "Darth Vader", BirthYear: "41.9BBY", Gender: "male"},
		{Name: "Leia Organa", BirthYear: "19BBY", Gender: "female"},
		{Name: "Owen Lars", BirthYear: "52BBY", Gender: "male"},
	}
}

// Planets are the first worlds of the public SWAPI dataset.
func Planets() []models.Planet {
	return []models.Planet{
		{Name: "Tatooine", Climate: "arid", Population: 200000},
		{Name: "Alderaan", Climate: "temperate", Population: 2000000000},
		{Name: "Yavin IV", Climate: "temperate, tropical", Population: 1000},
		{Name: "Hoth", Climate: "frozen", Population: 1},
		{Name: "Bespin", Climate: "temperate", Population: 6000000},
		{Name: "Endor", Climate: "temperate", Population: 30000000},
	}
}

// Run inserts each dataset into its table only when that table is empty,
// so running it on every start-up is harmless.
func Run(ctx context.Context, repos *repositories.Repositories, log zerolog.Logger) error {
	users, err := repos.Users.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if len(users) == 0 {
		if err := CreateUsers(ctx, repos.Users, Users()); err != nil {
			return err
		}
		log.Info().Int("count", len(Users())).Msg("seeded users")
	}

	people, err := repos.People.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed people: %w", err)
	}
	if len(people) == 0 {
		for _, p := range People() {
			if err := repos.People.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed person %s: %w", p.Name, err)
			}
		}
		log.Info().Int("count", len(People())).Msg("seeded people")
	}

	planets, err := repos.Planets.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed planets: %w", err)
	}
	if len(planets) == 0 {
		for _, p := range Planets() {
			if err := repos.Planets.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed planet %s: %w", p.Name, err)
			}
		}
		log.Info().Int("count", len(Planets())).Msg("seeded planets")
	}

	return nil
}

// CreateUsers validates every user against its model tags before inserting any,
// so that a bad account never leaves a half-seeded table.
func CreateUsers(ctx context.Context, repo repositories.UserRepository, users []models.User) error {
	for i := range users {
		if err := validate.Struct(&users[i]); err != nil {
			return fmt.Errorf("seed user %q: %w", users[i].Email, err)
		}
	}
	for i := range users {
		if err := repo.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].Email, err)
		}
	}
	return nil
}
