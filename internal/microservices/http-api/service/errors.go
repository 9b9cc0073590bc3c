package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"moviehub/internal/microservices/http-api/repository"
	"moviehub/internal/storage"
)

var (
	ErrNotFound   = repository.ErrNotFound
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries one message per offending input field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
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

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// translate turns a dangling reference into a validation error on the input
// field that carried it. Everything else passes through.
func translate(err error) error {
	var fk *repository.ForeignKeyError
	if errors.As(err, &fk) {
		return NewValidationError(fieldForConstraint(fk), "references a record that does not exist")
	}
	return err
}

func fieldForConstraint(fk *repository.ForeignKeyError) string {
	c := strings.ToLower(fk.Constraint + " " + fk.Detail)
	switch {
	case strings.Contains(c, "genre"):
		return "genreIds"
	case strings.Contains(c, "cinema"):
		return "cinemaIds"
	case strings.Contains(c, "actor"):
		return "actors"
	default:
		return "id"
	}
}

// uploadError reports storage rejections against the upload field.
func uploadError(field string, err error) error {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		return NewValidationError(field, err.Error())
	default:
		return fmt.Errorf("store %s: %w", field, err)
	}
}
