package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one field that failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig reports every empty required field, joined into one
// error. Ports are passed through to the runtime unchecked, and an unknown
// log level is left for the logger to replace with warn.
func validateConfig(cfg *Config) error {
	var errs []error

	for field, value := range map[string]string{
		"image_name":     cfg.ImageName,
		"container_name": cfg.ContainerName,
		"data_dir":       cfg.DataDir,
		"build_context":  cfg.BuildContext,
	} {
		if value == "" {
			errs = append(errs, &ValidationError{Field: field, Value: value, Message: "must not be empty"})
		}
	}

	return errors.Join(errs...)
}
