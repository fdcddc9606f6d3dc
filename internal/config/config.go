package config

import (
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/database"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `envconfig:"APP_PORT" default:"8080" json:"port"`
	Host        string `envconfig:"APP_HOST" default:"localhost" json:"host"`
	Environment string `envconfig:"APP_ENV" default:"development" json:"environment"`

	// DatabaseURL is the storage connection string, e.g. sqlite://app.db or postgres://...
	DatabaseURL string `envconfig:"DB_URI" default:"sqlite://app.db" json:"database_url"`

	// Logging configuration
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DatabaseURL: %s, LogLevel: %s}",
		c.Port, c.Host, c.Environment, database.MaskURL(c.DatabaseURL), c.LogLevel)
}

// Address is the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Database parses DatabaseURL into the settings used to open the store
func (c *Config) Database() (database.DatabaseConfig, error) {
	dbConfig, err := database.ConfigFromURL(c.DatabaseURL)
	if err != nil {
		return database.DatabaseConfig{}, fmt.Errorf("invalid DB_URI: %w", err)
	}
	return dbConfig, nil
}

// LoadDotenv loads variables from the given .env files into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotenv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		if os.IsNotExist(err) {
			log.Warn("No .env file found, using system environment variables")
			return
		}
		log.Warnf("Error loading .env file (but continuing): %v", err)
		return
	}
	log.Info("Loaded configuration from .env file")
}

// LoadConfig reads the configuration from environment variables and returns a Config struct.
// It returns an error if a variable cannot be converted or DB_URI cannot be parsed.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if _, err := config.Database(); err != nil {
		return nil, err
	}
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return &config, nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
