// Package fberrors provides the ambient error type for this module. It
// wraps github.com/gostdlib/base/errors exactly as Claw's own
// languages/go/errors package once wrapped it, so that every package
// here shares one error construction idiom instead of reaching for the
// stdlib errors package directly.
//
// The decoder's own error taxonomy (ParsingError, MissingField,
// Utf8DecodingError, VectorIndexOutOfBounds, EnumUnknown,
// UnionUnknown) is deliberately NOT built on top of this package —
// those are plain structs a caller inspects field-by-field with
// errors.As, not category/type-tagged errors. The semantic analyzer
// likewise reports through its own semantic.ValidationError. This
// package is used by the encoder: builder misuse, buffer overflow, and
// internal invariant violations.
package fberrors

import (
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/errors"
)

//go:generate stringer -type=Category -linecomment

// Category represents the broad category of an error.
type Category uint32

const (
	// CatUnknown should never be used directly.
	CatUnknown Category = Category(0) // Unknown
	// CatUser represents an error caused by bad caller input (a
	// malformed schema, a builder call made out of order).
	CatUser Category = Category(1) // User
	// CatInternal represents a bug in this module.
	CatInternal Category = Category(2) // Internal
)

//go:generate stringer -type=Type -linecomment

// Type represents the specific kind of error within a Category.
type Type uint16

const (
	TypeUnknown Type = Type(0) // Unknown
	// TypeBug marks a state that should be unreachable.
	TypeBug Type = Type(1) // Bug
	// TypeOverflow marks a buffer or slot that exceeded a wire limit.
	TypeOverflow Type = Type(2) // Overflow
	// TypeSchema marks an invalid or unresolved schema declaration.
	TypeSchema Type = Type(3) // Schema
)

// Error is the error type used across this module.
type Error = errors.Error

// EOption is an optional argument to E.
type EOption = errors.EOption

// E creates a new Error with category c and type t, wrapping msg.
func E(ctx context.Context, c Category, t Type, msg error, opts ...EOption) Error {
	all := make([]EOption, 0, len(opts)+1)
	all = append(all, errors.WithCallNum(2))
	all = append(all, opts...)
	return errors.E(ctx, errors.Category(c), errors.Type(t), msg, all...)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
