package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"starwars/internal/app"
	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/handlers"
	"starwars/internal/logger"
	"starwars/internal/metrics"
	"starwars/internal/repositories"
	"starwars/internal/seed"
	"starwars/internal/services"
	"starwars/pkg/rabbitmq"

	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// --- Storage ---
	var (
		db    *gorm.DB
		repos *repositories.Repositories
	)
	health := handlers.HealthCheck(app.AlwaysHealthy)
	if cfg.DBDriver == config.DriverMemory {
		repos = repositories.NewMemoryRepositories()
		log.Warn().Msg("using in-memory storage; data is lost on restart")
	} else {
		db, err = database.Open(cfg)
		if err != nil {
			log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to open database")
		}
		repos = repositories.NewGORMRepositories(db)
		health = func(ctx context.Context) error { return database.Ping(ctx, db) }
	}

	if cfg.SeedData {
		if err := seed.Run(context.Background(), repos, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	// --- Events ---
	var publisher services.EventPublisher = services.NoopPublisher{}
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		publisher = mqClient
		log.Info().Str("queue", mqClient.Queue()).Msg("publishing favorite events")
	}

	// --- HTTP ---
	fiberApp := app.NewApp(app.Deps{
		Config:       cfg,
		Repositories: repos,
		Publisher:    publisher,
		Health:       health,
		Metrics:      metrics.New(),
		Logger:       log,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.ListenAddr()).Msg("starting server")
		if err := fiberApp.Listen(cfg.ListenAddr()); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")

	if err := fiberApp.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during Fiber shutdown")
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Error().Err(err).Msg("error closing RabbitMQ client")
		}
	}
	if db != nil {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}
	log.Info().Msg("server gracefully stopped")
}
