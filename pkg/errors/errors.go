package errors

import (
	"fmt"
)

// ParseError represents a site definition decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure while rendering a single section.
type RenderError struct {
	SectionID string
	Type      string
	Err       error
}

// NewRenderError constructs a RenderError.
func NewRenderError(sectionID, sectionType string, err error) error {
	return &RenderError{SectionID: sectionID, Type: sectionType, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.SectionID != "" {
		return fmt.Sprintf("render error on section %s (%s): %v", e.SectionID, e.Type, e.Err)
	}
	return fmt.Sprintf("render error (%s): %v", e.Type, e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoreError indicates a failure in a site record backend.
type StoreError struct {
	Backend string
	Op      string
	Err     error
}

// NewStoreError constructs a StoreError for the given backend and operation.
func NewStoreError(backend, op string, err error) error {
	return &StoreError{Backend: backend, Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("store error [%s] %s: %v", e.Backend, e.Op, e.Err)
	}
	return fmt.Sprintf("store error [%s]: %v", e.Backend, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
