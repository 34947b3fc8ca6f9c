package config

import (
	"fmt"
	"strings"
)

// InvalidConfigError is returned when a config source does not decode into
// the Config shape or misses a required field.
type InvalidConfigError struct {
	Source string // file path, or empty for an anonymous reader
	Err    error
}

func (e *InvalidConfigError) Error() string {
	if e.Source == "" {
		return "invalid config: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid config %s: %v", e.Source, e.Err)
}

func (e *InvalidConfigError) Unwrap() error { return e.Err }

// ProfileNotFoundError is returned when the requested (or default) profile
// name matches no profile.
type ProfileNotFoundError struct {
	Name  string
	Known []string
}

func (e *ProfileNotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("profile %q not found, config has no profiles", e.Name)
	}
	return fmt.Sprintf("profile %q not found, known profiles: %s", e.Name, strings.Join(e.Known, ", "))
}

// GenerationError wraps a failure to serialize a well-formed in-memory
// config. It should not happen for valid data.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "generation failure: " + e.Err.Error() }

func (e *GenerationError) Unwrap() error { return e.Err }
