package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type MetricsConfig struct {
	Enabled bool
}

// DSN returns DATABASE_URL when set, otherwise a key/value connection string
// built from the individual DB_* settings.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrateURL returns the connection URL in the form golang-migrate's pgx/v5
// driver expects.
func (c DatabaseConfig) MigrateURL() string {
	if c.URL != "" {
		return "pgx5://" + trimScheme(c.URL)
	}
	return fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func trimScheme(url string) string {
	for _, scheme := range []string{"postgres://", "postgresql://", "pgx5://"} {
		if len(url) >= len(scheme) && url[:len(scheme)] == scheme {
			return url[len(scheme):]
		}
	}
	return url
}

func (c *Config) Validate() error {
	if c.Database.URL == "" && c.Database.Name == "" {
		return errors.New("database: DB_NAME or DATABASE_URL must be set")
	}
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("app: invalid PORT %q", c.App.Port)
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database: DB_MAX_CONNS must be positive, got %d", c.Database.MaxConns)
	}
	return nil
}

// LoadConfig reads .env.<APP_ENV> (or .env) when present and lets the
// process environment override every key.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_NAME", "board-game-reviews")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "9090")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("METRICS_ENABLED", true)

	v.AutomaticEnv()

	env := v.GetString("APP_ENV")
	for _, file := range []string{".env." + env, ".env"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
		break
	}

	// Production keeps the pool small unless told otherwise.
	if v.GetString("APP_ENV") == "production" {
		v.SetDefault("DB_MAX_CONNS", 2)
	} else {
		v.SetDefault("DB_MAX_CONNS", 10)
	}

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Env:             v.GetString("APP_ENV"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	return config, nil
}
