// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterStructValidation(productionRules, Config{})
	return v
}

// productionRules only fire when APP_ENV is production.
func productionRules(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if !cfg.IsProduction() {
		return
	}

	if cfg.Database.Password == "" || strings.HasPrefix(cfg.Database.Password, "MISSING_") {
		sl.ReportError(cfg.Database.Password, "Database.Password", "Password", "secret", "")
	}
	if cfg.Database.SSLMode == "disable" {
		sl.ReportError(cfg.Database.SSLMode, "Database.SSLMode", "SSLMode", "tls", "")
	}
	if !cfg.Security.SecureHeaders {
		sl.ReportError(cfg.Security.SecureHeaders, "Security.SecureHeaders", "SecureHeaders", "secure_headers", "")
	}
	for _, origin := range cfg.Security.AllowedOrigins {
		if origin == "*" {
			sl.ReportError(cfg.Security.AllowedOrigins, "Security.AllowedOrigins", "AllowedOrigins", "no_wildcard", "")
			break
		}
	}
	if cfg.Storage.Driver == "s3" && cfg.Storage.Bucket == "" {
		sl.ReportError(cfg.Storage.Bucket, "Storage.Bucket", "Bucket", "secret", "")
	}
}

// validateConfig returns every rule the configuration breaks, joined.
func validateConfig(cfg *Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	problems := make([]error, 0, len(fields))
	for _, fe := range fields {
		problems = append(problems, describe(fe))
	}
	return errors.Join(problems...)
}

func describe(fe validator.FieldError) error {
	// Namespace is "Config.Section.Field"
	_, name, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case "required", "secret":
		return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, name)
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value())
	case "gt":
		return fmt.Errorf("%s must be greater than %s", name, fe.Param())
	case "gte", "min":
		return fmt.Errorf("%s must be at least %s", name, fe.Param())
	case "lte", "max":
		return fmt.Errorf("%s must be at most %s", name, fe.Param())
	case "ltefield":
		return fmt.Errorf("%s must not exceed %s", name, fe.Param())
	case "gtefield":
		return fmt.Errorf("%s must not be below %s", name, fe.Param())
	case "tls":
		return errors.New("database SSL must be enabled in production")
	case "secure_headers":
		return errors.New("secure headers must be enabled in production")
	case "no_wildcard":
		return errors.New("wildcard origin (*) not allowed in production")
	default:
		return fmt.Errorf("%s failed %q", name, fe.Tag())
	}
}
