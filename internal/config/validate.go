package config

import (
	"errors"

	"github.com/thoreinstein/hostinfo/pkg/platform"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidOutput indicates an unrecognized output format.
	ErrInvalidOutput = errors.New("output must be one of: text, json, yaml")

	// ErrInvalidRuntimeVersion indicates the runtime-version override
	// cannot be parsed into version components.
	ErrInvalidRuntimeVersion = errors.New("invalid runtime version override")
)

// validOutputs are the accepted report output formats.
var validOutputs = map[string]bool{
	"":     true, // unset means "use default"
	"text": true,
	"json": true,
	"yaml": true,
}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if !validOutputs[cfg.Output] {
		errs = append(errs, ErrInvalidOutput)
	}

	// A runtime-version override must survive the facade's own parse,
	// otherwise every RuntimeVersion call would fail at runtime.
	if cfg.Runtime.Version != "" {
		if _, err := platform.ParseRuntimeVersion(cfg.Runtime.Version); err != nil {
			errs = append(errs, &FieldError{
				Field: "runtime.version",
				Value: cfg.Runtime.Version,
				Err:   ErrInvalidRuntimeVersion,
			})
		}
	}

	return errs
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
