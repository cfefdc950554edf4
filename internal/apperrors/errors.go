// Package apperrors defines the error taxonomy shared by the repository,
// service, and handler layers. All errors are terminal for the current
// request; retry policy belongs to callers.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIntegrityConflict marks a mutation blocked by existing references,
// e.g. deleting a code value that an address still points at.
var ErrIntegrityConflict = errors.New("operation blocked by existing references")

// ErrDuplicate marks a create rejected by a uniqueness rule.
var ErrDuplicate = errors.New("resource already exists")

// NotFoundError reports an entity lookup miss. Resource names the entity
// kind, ID the identifier(s) attempted.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with identifier %s does not exist", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for the given resource and identifier.
func NotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: fmt.Sprint(id)}
}

// IsNotFound reports whether err is any lookup-miss error, including
// reference resolution failures.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var rnf *ReferenceNotFoundError
	return errors.As(err, &rnf)
}

// ReferenceNotFoundError reports a code-value token (numeric id or label)
// that resolved to nothing.
type ReferenceNotFoundError struct {
	Token string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("code value reference %q does not resolve to an existing value", e.Token)
}

// FieldError names one offending payload field and why it was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports a payload that failed schema or business-rule
// checks, carrying the full list of offending fields.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Invalid builds a single-field ValidationError.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
