package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for request validation. Check with errors.Is().
var (
	// ErrInvalidRequest indicates the request arguments are invalid.
	ErrInvalidRequest = errors.New("poem: invalid request")

	// ErrUnknownTool indicates the tool name is not one this server exposes.
	ErrUnknownTool = errors.New("poem: unknown tool")
)

// MissingFieldError reports a required text field that was absent or empty
// after trimming.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field '%s'", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrInvalidRequest
}

// InvalidEnumValueError reports an optional enum field whose value is outside
// its declared set.
type InvalidEnumValueError struct {
	Field   string
	Value   interface{}
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid value %q for field '%s' (allowed: %s)",
		fmt.Sprintf("%v", e.Value), e.Field, strings.Join(e.Allowed, ", "))
}

func (e *InvalidEnumValueError) Unwrap() error {
	return ErrInvalidRequest
}

// UnknownToolError reports a tool name that is not registered.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool '%s'", e.Tool)
}

func (e *UnknownToolError) Unwrap() error {
	return ErrUnknownTool
}

// IsValidationError reports whether err stems from request validation (as
// opposed to a downstream generation failure).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}
