package fathom

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedKind indicates a type contains a kind no engine can
	// traverse (chan, func, complex, uintptr, unsafe pointer).
	ErrUnsupportedKind = errors.New("unsupported kind")

	// ErrInterfaceField indicates a type contains an interface, for which
	// the deep-copy engine cannot allocate a referent.
	ErrInterfaceField = errors.New("interface field")

	// ErrOverrideSignature indicates a type declares an override method
	// (Equal, Compare, Hash, Clone) with the wrong signature.
	ErrOverrideSignature = errors.New("invalid override signature")

	// ErrInvalidTag indicates a deep tag has an unknown value.
	ErrInvalidTag = errors.New("invalid tag")
)

// SchemaError represents a build-time schema rejection.
// It wraps a sentinel error with the type and field that triggered it.
// Engines raise no errors at call time; every rejection happens here.
type SchemaError struct {
	Err   error  // Underlying sentinel error (ErrUnsupportedKind, etc.)
	Type  string // Type whose schema was being built
	Field string // Field path within the type, if any
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %s)", e.Type, e.Err.Error(), e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Err.Error())
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// newSchemaError creates a SchemaError for a build-time rejection.
func newSchemaError(sentinel error, typeName, field string) error {
	return &SchemaError{
		Err:   sentinel,
		Type:  typeName,
		Field: field,
	}
}
