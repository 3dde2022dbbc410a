package fderrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidDependency indicates a malformed functional dependency,
	// such as one with an empty left- or right-hand side.
	ErrInvalidDependency = errors.New("invalid dependency")

	// ErrAttributeNotInSchema indicates a dependency mentions an attribute
	// the governing schema does not contain.
	ErrAttributeNotInSchema = errors.New("attribute not in schema")

	// ErrUnsupportedInputShape indicates a seed was supplied in a shape the
	// closure computer does not accept.
	ErrUnsupportedInputShape = errors.New("unsupported input shape")

	// ErrInternalInconsistency indicates an internal invariant was breached.
	// It always signals a defect, never a user error.
	ErrInternalInconsistency = errors.New("internal inconsistency")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// DependencyError represents a malformed functional dependency.
type DependencyError struct {
	// LHS is the rendered left-hand side as supplied (may be empty)
	LHS string
	// RHS is the rendered right-hand side as supplied (may be empty)
	RHS string
	// Message describes what is wrong with the dependency
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DependencyError) Error() string {
	msg := "invalid dependency"
	if e.LHS != "" || e.RHS != "" {
		msg += fmt.Sprintf(" %q -> %q", e.LHS, e.RHS)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DependencyError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DependencyError) Is(target error) bool {
	return target == ErrInvalidDependency
}

// AttributeError represents a dependency that references an attribute
// outside its schema.
type AttributeError struct {
	// Attribute is the offending attribute name
	Attribute string
	// Schema is the rendered schema the attribute was checked against
	Schema string
	// Dependency is the rendered dependency that mentions the attribute (optional)
	Dependency string
}

// Error returns a human-readable error message.
func (e *AttributeError) Error() string {
	msg := "attribute not in schema"
	if e.Attribute != "" {
		msg += ": " + e.Attribute
	}
	if e.Schema != "" {
		msg += " (schema " + e.Schema + ")"
	}
	if e.Dependency != "" {
		msg += " in " + e.Dependency
	}
	return msg
}

// Unwrap returns nil as AttributeError has no underlying cause.
func (e *AttributeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *AttributeError) Is(target error) bool {
	return target == ErrAttributeNotInSchema
}

// InputShapeError represents a seed whose shape could not be recognized.
type InputShapeError struct {
	// Shape names the shape that was found
	Shape string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *InputShapeError) Error() string {
	msg := "unsupported input shape"
	if e.Shape != "" {
		msg += ": " + e.Shape
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as InputShapeError has no underlying cause.
func (e *InputShapeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InputShapeError) Is(target error) bool {
	return target == ErrUnsupportedInputShape
}

// InconsistencyError represents a breached internal invariant, for example a
// schema reported as violating BCNF for which no violating dependency exists.
type InconsistencyError struct {
	// Schema is the rendered schema being processed
	Schema string
	// Message describes the breached invariant
	Message string
}

// Error returns a human-readable error message.
func (e *InconsistencyError) Error() string {
	msg := "internal inconsistency"
	if e.Schema != "" {
		msg += " in " + e.Schema
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as InconsistencyError has no underlying cause.
func (e *InconsistencyError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInternalInconsistency
}

// ResourceLimitError represents a schema too large to enumerate.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "attributes"
	ResourceType string
	// Limit is the configured maximum value
	Limit int
	// Actual is the value that exceeded the limit
	Actual int
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid option or a missing required input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ConfigError has no underlying cause.
func (e *ConfigError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
