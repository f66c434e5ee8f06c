package core

import (
	"errors"
	"fmt"
)

// Pipeline errors - centralized error definitions
var (
	// Load errors
	ErrDataLoad = errors.New("data load failed")

	// Precondition errors
	ErrState = errors.New("operation called out of order")

	// Output errors
	ErrVisualization = errors.New("visualization failed")
	ErrExport        = errors.New("export failed")
)

// Error constructors with context
func NewDataLoadError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDataLoad, path, err)
}

func NewStateError(operation, precondition string) error {
	return fmt.Errorf("%w: %s requires %s", ErrState, operation, precondition)
}

func NewVisualizationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrVisualization, reason)
}

func NewExportError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExport, path, err)
}

// Error checking helpers
func IsDataLoadError(err error) bool {
	return errors.Is(err, ErrDataLoad)
}

func IsStateError(err error) bool {
	return errors.Is(err, ErrState)
}

func IsVisualizationError(err error) bool {
	return errors.Is(err, ErrVisualization)
}

func IsExportError(err error) bool {
	return errors.Is(err, ErrExport)
}
