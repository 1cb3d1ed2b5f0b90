package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError with errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every *NotFoundError with errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous matches every *AmbiguousError with errors.Is.
	ErrAmbiguous = errors.New("ambiguous reference")
)

// ValidationError is returned when user input cannot produce a valid entity.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Kind string // e.g. "word list"
	Ref  string // the id or name that was looked up
	// Suggestion is an optional close match offered to the user.
	Suggestion string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AmbiguousError is returned when a reference matches more than one entity.
type AmbiguousError struct {
	Kind    string
	Ref     string
	Matches []string // display names of the matching entities
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous %s id prefix %q matches %d lists: %s",
		e.Kind, e.Ref, len(e.Matches), strings.Join(e.Matches, ", "))
}

// Is lets errors.Is(err, ErrAmbiguous) match.
func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}
