package domain

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the facade exposes. Backend
// adapters must classify every transport failure into one of these before
// returning; nothing transport-specific crosses the adapter boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindValidation
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindValidation:
		return "validation_failed"
	case KindUnavailable:
		return "backend_unavailable"
	default:
		return "unknown"
	}
}

// Error is the transport-agnostic failure value passed between layers.
// Fields is populated only for KindValidation, mapping field name to the list
// of violation messages.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

func NotFound(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with id %s not found", resource, id)}
}

func AlreadyExists(resource, name string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: fmt.Sprintf("%s with name %s already exists", resource, name)}
}

func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Validationf builds a single-field validation error.
func Validationf(field, format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed",
		Fields:  map[string][]string{field: {fmt.Sprintf(format, args...)}},
	}
}

func Unavailable(msg string) *Error {
	return &Error{Kind: KindUnavailable, Message: msg}
}

func Unknown(msg string) *Error {
	return &Error{Kind: KindUnknown, Message: msg}
}

func kindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return KindUnknown, false
}

func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

func IsAlreadyExists(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindAlreadyExists
}

func IsValidation(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindValidation
}

func IsUnavailable(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindUnavailable
}
