package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

// ValidationFailedError carries per-field messages back to the client.
type ValidationFailedError struct {
	Errors map[string][]string
}

func (e *ValidationFailedError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Errors[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
