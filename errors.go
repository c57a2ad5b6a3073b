package redischema

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContentVector is returned when content_vector_key does not match
	// the name of any entry in the vector group.
	ErrNoContentVector = errors.New("no content_vector field found")
)

// ValidationError indicates a field definition that fails a type, range or
// enum constraint at construction time.
type ValidationError struct {
	Kind   FieldType // field kind being validated
	Name   string    // field name, empty when the name itself is missing
	Attr   string    // offending attribute, e.g. "distance_metric"
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid %s field: %s: %s", e.Kind, e.Attr, e.Reason)
	}
	return fmt.Sprintf("invalid %s field %q: %s: %s", e.Kind, e.Name, e.Attr, e.Reason)
}

// TypeError indicates that ReadSchema received none of the accepted input
// shapes.
type TypeError struct {
	Input any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("index schema must be a map, a path to a YAML file, or YAML bytes; got %T", e.Input)
}

// FormatError indicates schema text that could not be read or parsed into
// the expected nested structure.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FormatError struct {
	Path  string // source path or document name, empty for inline input
	cause error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse schema: %v", e.cause)
	}
	return fmt.Sprintf("read schema %q: %v", e.Path, e.cause)
}

func (e *FormatError) Unwrap() error { return e.cause }
