// Package apperr holds the error taxonomy shared by services, importers and HTTP handlers.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports user-facing problems keyed by the offending field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Invalid is a shorthand for a single-field validation failure.
func Invalid(field, message string) error {
	v := NewValidation()
	v.Add(field, message)

	return v
}

// Add records a message for field. The first message per field wins.
func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; exists {
		return
	}

	e.Fields[field] = message
}

// OrNil returns nil when nothing was recorded, so callers can `return v.OrNil()`.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrNotFound matches any *NotFoundError under errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError is returned when a referenced record does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// DuplicateReferenceError means a generated reference collided with an existing record.
// The create can be retried: the next allocation yields a fresh number.
type DuplicateReferenceError struct {
	Entity    string
	Reference string
}

func (e *DuplicateReferenceError) Error() string {
	return fmt.Sprintf("%s reference %s already exists", e.Entity, e.Reference)
}

func (e *DuplicateReferenceError) Retryable() bool { return true }

// ParseError wraps a malformed cell, amount or reference suffix.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
