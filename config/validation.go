package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines which credentials each environment must provide
type ConfigRequirements struct {
	RequireRecipeAPIKey bool
	RequireDBPassword   bool
}

var requirements = map[Environment]ConfigRequirements{
	Development: {RequireRecipeAPIKey: true},
	Test:        {},
	CI:          {RequireDBPassword: true},
	Production:  {RequireRecipeAPIKey: true, RequireDBPassword: true},
}

// ValidateConfig checks if the configuration meets the requirements for the current environment.
// All problems are reported together.
func ValidateConfig(cfg *Config) error {
	reqs := requirements[GetEnvironment()]

	var errs []error

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		for _, required := range []struct{ field, value string }{
			{"DB_HOST", cfg.DBHost},
			{"DB_PORT", cfg.DBPort},
			{"DB_USER", cfg.DBUser},
			{"DB_NAME", cfg.DBName},
		} {
			if required.value == "" {
				errs = append(errs, ValidationError{Field: required.field, Message: "is required"})
			}
		}
		if reqs.RequireDBPassword && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{Field: "DB_PASSWORD", Message: "db_password secret or DB_PASSWORD is required"})
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{Field: "SQLITE_PATH", Message: "is required"})
		}
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.RecipeAPIURL == "" || !strings.HasPrefix(cfg.RecipeAPIURL, "http") {
		errs = append(errs, ValidationError{Field: "RECIPE_API_URL", Message: fmt.Sprintf("invalid url %q", cfg.RecipeAPIURL)})
	}
	if reqs.RequireRecipeAPIKey && cfg.RecipeAPIKey == "" {
		errs = append(errs, ValidationError{Field: "RECIPE_API_KEY", Message: "recipe_api_key secret or RECIPE_API_KEY is required"})
	}
	if cfg.RecipeAPIPageSize <= 0 {
		errs = append(errs, ValidationError{Field: "RECIPE_API_PAGE_SIZE", Message: "must be positive"})
	}

	return errors.Join(errs...)
}
