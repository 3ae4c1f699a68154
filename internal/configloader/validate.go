package configloader

import (
	"fmt"

	"github.com/yaklabco/texcalc/internal/logging"
	"github.com/yaklabco/texcalc/pkg/config"
)

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// Validate checks the enumerated fields of cfg and returns the first problem.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		return &ValidationError{Field: "color", Value: string(cfg.Color), Message: "expected auto, always or never"}
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		return &ValidationError{Field: "format", Value: string(cfg.Format), Message: "expected text, json or diff"}
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return &ValidationError{Field: "log_level", Value: cfg.LogLevel, Message: "expected debug, info, warn or error"}
	}

	return nil
}
