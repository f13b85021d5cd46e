// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads a .env file into the process environment, if one exists.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds every setting the service reads at start-up.
type Config struct {
	Port             int    `validate:"min=1,max=65535"`
	DBDriver         string `validate:"oneof=sqlite postgres memory"`
	DatabaseDSN      string `validate:"required_unless=DBDriver memory"`
	LogLevel         string
	LogFormat        string
	RabbitMQURL      string `validate:"omitempty,url"`
	SeedData         bool
	CORSAllowOrigins string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 3000)
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "/tmp/test.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SEED_DATA", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
}

// Load reads the configuration from environment variables on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds and validates a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:             v.GetInt("PORT"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		SeedData:         v.GetBool("SEED_DATA"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ListenAddr is the address the HTTP server binds to: every interface, configured port.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
