package config

import (
	"fmt"
	"os"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Production refuses to run on development defaults.
func ValidateConfig(cfg *Config) error {
	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			return ValidationError{Field: "DB_PATH", Message: "required when DB_DRIVER=sqlite"}
		}
	case "postgres":
		if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
			return ValidationError{Field: "DB_HOST/DB_NAME/DB_USER", Message: "required when DB_DRIVER=postgres"}
		}
	default:
		return ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}
	}

	if IsProduction() {
		if cfg.JWTSecret == "" || cfg.JWTSecret == "dev-secret" {
			return ValidationError{Field: "JWT_SECRET", Message: "must be set in production"}
		}
		if cfg.DBDriver == "postgres" && os.Getenv("DB_PASSWORD") == "" {
			return ValidationError{Field: "DB_PASSWORD", Message: "must be set in production"}
		}
	}

	return nil
}
