package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrFormat       = errors.New("invalid document format")
	ErrConflict     = errors.New("destination already exists")
	ErrScanInFlight = errors.New("a scan is already running")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing document or file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FormatError reports a document that exists but is structurally invalid.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid document %s: %s", e.Path, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ConflictError reports a rename destination that already exists.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a file named %q already exists", e.Name)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
