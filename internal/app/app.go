// Package app assembles the Fiber application from its dependencies.
package app

import (
	"context"

	"starwars/internal/config"
	"starwars/internal/handlers"
	"starwars/internal/metrics"
	"starwars/internal/middleware"
	"starwars/internal/repositories"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the HTTP layer needs. Publisher and Health may be nil.
type Deps struct {
	Config       *config.Config
	Repositories *repositories.Repositories
	Publisher    services.EventPublisher
	Health       handlers.HealthCheck
	Metrics      *metrics.Metrics
	Logger       zerolog.Logger
}

// NewApp builds the Fiber app with every middleware and route registered.
func NewApp(deps Deps) *fiber.App {
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}
	allowOrigins := "*"
	if deps.Config != nil && deps.Config.CORSAllowOrigins != "" {
		allowOrigins = deps.Config.CORSAllowOrigins
	}

	app := fiber.New(fiber.Config{
		AppName:               "starwars",
		ErrorHandler:          handlers.ErrorHandler(deps.Logger),
		DisableStartupMessage: true,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{AllowOrigins: allowOrigins}))
	app.Use(middleware.AccessLog(deps.Logger))
	app.Use(middleware.Metrics(m))

	// --- Services ---
	repos := deps.Repositories
	peopleService := services.NewPeopleService(repos.People)
	planetService := services.NewPlanetService(repos.Planets)
	userService := services.NewUserService(repos.Users)
	favoriteService := services.NewFavoriteService(repos.Favorites, deps.Publisher, m, deps.Logger)

	// --- Routes ---
	handlers.NewIndexHandler(deps.Health).RegisterRoutes(app)
	handlers.NewPeopleHandler(peopleService).RegisterRoutes(app)
	handlers.NewPlanetHandler(planetService).RegisterRoutes(app)
	handlers.NewUserHandler(userService).RegisterRoutes(app)
	handlers.NewFavoriteHandler(favoriteService).RegisterRoutes(app)

	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	return app
}

// AlwaysHealthy is the health check for stores without a connection to ping.
func AlwaysHealthy(context.Context) error {
	return nil
}
