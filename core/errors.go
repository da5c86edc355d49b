// Package core provides shared types and utilities for the Chime SDK Messaging shapes.
//
// This package contains:
//   - Error types for enum parsing and advisory shape validation
//   - Struct-tag driven validation and debug rendering
//   - Epoch-second timestamp handling
//   - Logging utilities
//
// Error types can be used with errors.As to inspect a failure:
//
//	if err := input.Validate(); err != nil {
//	    var invalid *core.InvalidParamsError
//	    if errors.As(err, &invalid) {
//	        for _, p := range invalid.Errors {
//	            log.Printf("%s: %s", p.Field, p.Message)
//	        }
//	    }
//	}
package core

import (
	"fmt"
	"strings"
)

// InvalidValueError is returned when a raw wire string does not name any
// variant of a closed enum set.
type InvalidValueError struct {
	Field   string   `json:"field"`
	Value   string   `json:"value"`
	Allowed []string `json:"allowed,omitempty"`
}

func (e *InvalidValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid value for %s: empty string, must be one of: %s",
			e.Field, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("invalid value %q for %s, must be one of: %s",
		e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

// NewInvalidValueError creates a new InvalidValueError.
func NewInvalidValueError(field, value string, allowed []string) *InvalidValueError {
	return &InvalidValueError{Field: field, Value: value, Allowed: allowed}
}

// ParamErrorKind classifies a single validation failure.
type ParamErrorKind string

const (
	ParamRequired ParamErrorKind = "required"
	ParamMinLen   ParamErrorKind = "min-len"
	ParamMaxLen   ParamErrorKind = "max-len"
	ParamMinValue ParamErrorKind = "min-value"
	ParamMaxValue ParamErrorKind = "max-value"
	ParamPattern  ParamErrorKind = "pattern"
	ParamEnum     ParamErrorKind = "enum"
)

// ParamError represents a validation error for a specific field.
//
// Field is the dotted path from the validated shape, e.g.
// "ExpirationSettings.ExpirationDays" or "Processors[0].Name".
type ParamError struct {
	Context string         `json:"context"`
	Field   string         `json:"field"`
	Kind    ParamErrorKind `json:"kind"`
	Message string         `json:"message"`
}

func (e ParamError) Error() string {
	return fmt.Sprintf("%s, %s.%s", e.Message, e.Context, e.Field)
}

// InvalidParamsError collects every ParamError found on a shape.
type InvalidParamsError struct {
	Context string       `json:"context"`
	Errors  []ParamError `json:"errors"`
}

func (e *InvalidParamsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "InvalidParameter: %d validation error(s) found.", len(e.Errors))
	for _, p := range e.Errors {
		b.WriteString("\n- ")
		b.WriteString(p.Error())
		b.WriteString(".")
	}
	return b.String()
}

// Add appends a ParamError to the collection.
func (e *InvalidParamsError) Add(field string, kind ParamErrorKind, message string) {
	e.Errors = append(e.Errors, ParamError{
		Context: e.Context,
		Field:   field,
		Kind:    kind,
		Message: message,
	})
}

// Len returns the number of collected errors.
func (e *InvalidParamsError) Len() int {
	return len(e.Errors)
}

// Has reports whether a given field failed with the given kind.
func (e *InvalidParamsError) Has(field string, kind ParamErrorKind) bool {
	for _, p := range e.Errors {
		if p.Field == field && p.Kind == kind {
			return true
		}
	}
	return false
}

// Fields returns the failing field paths in the order they were found.
func (e *InvalidParamsError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, p := range e.Errors {
		fields = append(fields, p.Field)
	}
	return fields
}
