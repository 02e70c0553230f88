package enumext

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors surfaced by the resolution engine and by
// generated lookup helpers.
var (
	// ErrParse is returned when a declaration carries malformed
	// configuration, such as an unrecognized configuration key or an
	// integer type outside the supported whitelist.
	ErrParse = errors.New("enumext: parse error")

	// ErrVariant is returned when a variant list is semantically illegal:
	// an empty enum, a payload-bearing variant in simple mode, or a
	// payload-bearing enum with a discriminant-free variant.
	ErrVariant = errors.New("enumext: variant error")

	// ErrUnknownVariant is returned by generated lookup helpers when a
	// string or integer value does not correspond to any variant.
	ErrUnknownVariant = errors.New("enumext: unknown variant")
)

// ParseError represents a malformed declaration configuration. It is
// caller-correctable by fixing the declaration syntax.
type ParseError struct {
	Key     string // configuration key, if applicable
	Value   any    // offending value, if applicable
	Message string
}

// Error returns the error string.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("enumext: parse error")
	if e.Key != "" {
		fmt.Fprintf(&b, " for %q", e.Key)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (value: %v)", e.Value)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError.
func NewParseError(key string, value any, message string) *ParseError {
	return &ParseError{Key: key, Value: value, Message: message}
}

// VariantError represents a semantically invalid variant set. It is
// caller-correctable by restructuring the variants. Resolution aborts on the
// first violation; partial metadata is never returned.
type VariantError struct {
	Enum    string // enum name
	Variant string // variant name, if applicable
	Message string
	Cause   error
}

// Error returns the error string.
func (e *VariantError) Error() string {
	var b strings.Builder
	b.WriteString("enumext: variant error")
	if e.Enum != "" {
		b.WriteString(" in enum ")
		b.WriteString(e.Enum)
	}
	if e.Variant != "" {
		b.WriteString(" on variant ")
		b.WriteString(e.Variant)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *VariantError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for VariantError.
func (e *VariantError) Is(target error) bool {
	return target == ErrVariant
}

// NewVariantError creates a new VariantError.
func NewVariantError(enumName, variantName, message string, cause error) *VariantError {
	return &VariantError{Enum: enumName, Variant: variantName, Message: message, Cause: cause}
}

// UnknownVariantError is returned by generated helpers when a lookup value
// does not name a variant of the enum.
type UnknownVariantError struct {
	Enum  string // enum type name
	Value any    // the value that was looked up
}

// Error returns the error string.
func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("enumext: unknown variant of %s: %v", e.Enum, e.Value)
}

// Is reports whether the target matches the sentinel error for UnknownVariantError.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// NewUnknownVariantError returns a new UnknownVariantError for the given
// enum type and lookup value.
func NewUnknownVariantError(enumName string, value any) *UnknownVariantError {
	return &UnknownVariantError{Enum: enumName, Value: value}
}

// IsParse returns true if the error is a ParseError.
func IsParse(err error) bool {
	if err == nil {
		return false
	}
	var e *ParseError
	return errors.As(err, &e) || errors.Is(err, ErrParse)
}

// IsVariant returns true if the error is a VariantError.
func IsVariant(err error) bool {
	if err == nil {
		return false
	}
	var e *VariantError
	return errors.As(err, &e) || errors.Is(err, ErrVariant)
}

// IsUnknownVariant returns true if the error is an UnknownVariantError.
func IsUnknownVariant(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownVariantError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownVariant)
}
