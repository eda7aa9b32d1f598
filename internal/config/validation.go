package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if c.Profiling.Radius <= 0 {
		errors = append(errors, ValidationError{
			Field:   "profiling.radius",
			Message: "must be greater than zero",
		})
	}
	if c.Profiling.MinNeighbors < 1 {
		errors = append(errors, ValidationError{
			Field:   "profiling.min_neighbors",
			Message: "must be at least 1",
		})
	}

	if c.Translation.RetryBudget < 0 {
		errors = append(errors, ValidationError{
			Field:   "translation.retry_budget",
			Message: "must not be negative",
		})
	}
	if c.Translation.MaxTokens < 1 {
		errors = append(errors, ValidationError{
			Field:   "translation.max_tokens",
			Message: "must be at least 1",
		})
	}

	if c.LLM.TimeoutSeconds < 1 {
		errors = append(errors, ValidationError{
			Field:   "llm.timeout_seconds",
			Message: "must be at least 1",
		})
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q (use debug, info, warn, or error)", c.Logging.Level),
		})
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q (use json or text)", c.Logging.Format),
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// ValidateDatabase checks that connection details are present. Separate from
// Validate because profiling and cleaning work entirely in memory and must
// not require a database.
func (c *Config) ValidateDatabase() error {
	var errors ValidationErrors

	if c.Database.Host == "" {
		errors = append(errors, ValidationError{Field: "database.host", Message: "host is required"})
	}
	if c.Database.User == "" {
		errors = append(errors, ValidationError{Field: "database.user", Message: "user is required"})
	}
	if c.Database.Database == "" {
		errors = append(errors, ValidationError{Field: "database.database", Message: "database name is required"})
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		errors = append(errors, ValidationError{Field: "database.port", Message: "port must be between 1 and 65535"})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
