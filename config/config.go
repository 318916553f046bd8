package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultServerPort        = "8080"
	defaultRecipeAPIURL      = "https://api.spoonacular.com"
	defaultRecipeAPIPageSize = 10
	defaultRecipeAPITimeout  = 10 * time.Second
	defaultShutdownTimeout   = 30 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort         string
	ServerHost         string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Upstream recipe provider
	RecipeAPIURL      string
	RecipeAPIKey      string
	RecipeAPIPageSize int
	RecipeAPITimeout  time.Duration

	LogLevel string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}
	loadCommon(cfg)

	// Credentials come from a different place per environment
	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// URL returns the postgres connection string in URL form, as accepted by lib/pq.
func (c *Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// loadCommon reads the non-secret settings shared by every environment
func loadCommon(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", defaultServerPort)
	cfg.ServerHost = getEnv("SERVER_HOST", "")
	cfg.ShutdownTimeout = defaultShutdownTimeout
	if seconds, err := strconv.Atoi(os.Getenv("SHUTDOWN_TIMEOUT_SECONDS")); err == nil && seconds > 0 {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = getEnv("DB_USER", "postgres")
	cfg.DBName = getEnv("DB_NAME", "recipes")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.SQLitePath = getEnv("SQLITE_PATH", "recipes.db")

	cfg.RecipeAPIURL = strings.TrimRight(getEnv("RECIPE_API_URL", defaultRecipeAPIURL), "/")
	cfg.RecipeAPIPageSize = defaultRecipeAPIPageSize
	if size, err := strconv.Atoi(os.Getenv("RECIPE_API_PAGE_SIZE")); err == nil && size > 0 {
		cfg.RecipeAPIPageSize = size
	}
	cfg.RecipeAPITimeout = defaultRecipeAPITimeout
	if d, err := time.ParseDuration(os.Getenv("RECIPE_API_TIMEOUT")); err == nil && d > 0 {
		cfg.RecipeAPITimeout = d
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
}

// loadCIConfig loads credentials for CI environment using ONLY environment variables
func loadCIConfig(cfg *Config) error {
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	if cfg.DBDriver == DriverPostgres && cfg.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD environment variable is required in CI environment")
	}
	cfg.RecipeAPIKey = recipeAPIKeyFromEnv()
	return nil
}

// loadDevConfig prefers environment variables and falls back to Docker secrets
func loadDevConfig(cfg *Config) {
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	if cfg.DBPassword == "" {
		cfg.DBPassword = readSecret("db_password")
	}
	cfg.RecipeAPIKey = recipeAPIKeyFromEnv()
	if cfg.RecipeAPIKey == "" {
		cfg.RecipeAPIKey = readSecret("recipe_api_key")
	}
}

// loadProdConfig loads credentials for production from Docker secrets only
func loadProdConfig(cfg *Config) {
	if user := readSecret("db_user"); user != "" {
		cfg.DBUser = user
	}
	cfg.DBPassword = readSecret("db_password")
	cfg.RecipeAPIKey = readSecret("recipe_api_key")
}

func recipeAPIKeyFromEnv() string {
	if key := os.Getenv("RECIPE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
