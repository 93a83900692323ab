package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverGorm     = "gorm"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	StoreDriver     string        `envconfig:"STORE_DRIVER"      default:"postgres"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	SQLitePath      string        `envconfig:"SQLITE_PATH"       default:"categories.db"`
	HTTPPort        string        `envconfig:"HTTP_PORT"         default:":8081"`
	GrpcPort        string        `envconfig:"GRPC_PORT"         default:":50051"` // empty disables gRPC
	LogLevel        string        `envconfig:"LOG_LEVEL"         default:"info"`
	GinMode         string        `envconfig:"GIN_MODE"          default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"  default:"10s"`
	AutoCreateTable bool          `envconfig:"AUTO_CREATE_TABLE" default:"false"`
}

// LoadConfig reads envFile (if it exists) into the environment and then
// processes the environment into a Config.
func LoadConfig(logger *logrus.Logger, envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warnf("Error loading %s file (but continuing): %v", envFile, err)
		} else if err == nil {
			logger.Infof("Loaded configuration from %s file", envFile)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Infof("Configuration loaded: Driver=%s, HTTP Port=%s, GRPC Port=%s, LogLevel=%s",
		cfg.StoreDriver, cfg.HTTPPort, cfg.GrpcPort, cfg.LogLevel)
	if cfg.DatabaseURL != "" {
		logger.Info("Configuration loaded: DatabaseURL is set")
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres, DriverGorm:
		if c.DatabaseURL == "" {
			return fmt.Errorf("configuration error: DATABASE_URL is required for store driver %q", c.StoreDriver)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("configuration error: SQLITE_PATH is required for store driver \"sqlite\"")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("configuration error: unknown store driver %q", c.StoreDriver)
	}

	if c.HTTPPort == "" {
		return errors.New("configuration error: HTTP_PORT cannot be empty")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("configuration error: GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("configuration error: SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
