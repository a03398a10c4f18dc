// Package fbtypes holds the scalar type constraints and wire-level offset
// types shared by the encoder and decoder. It plays the role Claw's
// own claw.go and internal/field/field.go once played here: a small
// package, depending only on golang.org/x/exp/constraints, that
// everything else imports.
package fbtypes

import "golang.org/x/exp/constraints"

// UOffset is an unsigned forward offset from a field location to the
// object it references.
type UOffset = uint32

// SOffset is a signed offset from a table's start to its vtable.
type SOffset = int32

// VOffset is the offset from a table's start to one of its fields, or
// zero meaning the field is absent.
type VOffset = uint16

// Number is every scalar numeric type the wire format supports.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scalar is every fixed-width value the encoder can write inline: a
// number or a bool. Strings, vectors, tables, structs and unions are
// written out-of-line and are not Scalars.
type Scalar interface {
	Number | ~bool
}

// BaseType enumerates the FlatBuffers base types, mirroring the role
// Claw's own field.Type once played here but naming the FlatBuffers
// vocabulary instead of Claw's.
type BaseType uint8

//go:generate stringer -type=BaseType -linecomment

const (
	Unknown BaseType = iota // Unknown
	Bool                    // Bool
	Byte                    // Byte
	UByte                   // UByte
	Short                   // Short
	UShort                  // UShort
	Int                     // Int
	UInt                    // UInt
	Long                    // Long
	ULong                   // ULong
	Float                   // Float
	Double                  // Double
	StringT                 // String
	VectorT                 // Vector
	Obj                     // Obj
	UnionT                  // Union
	UType                   // UType
)

// SizeOf returns the inline wire size, in bytes, of a scalar BaseType.
// Reference types (String, Vector, Obj, Union) are always stored
// inline as a 4-byte UOffset, and UType is the 1-byte union tag.
func SizeOf(t BaseType) int {
	switch t {
	case Bool, Byte, UByte, UType:
		return 1
	case Short, UShort:
		return 2
	case Int, UInt, Float, StringT, VectorT, Obj, UnionT:
		return 4
	case Long, ULong, Double:
		return 8
	}
	return 0
}

// AlignOf returns the natural alignment of a BaseType, which for every
// scalar equals its size.
func AlignOf(t BaseType) int {
	return SizeOf(t)
}

// IsFloatingPoint reports whether t is Float or Double.
func IsFloatingPoint(t BaseType) bool {
	return t == Float || t == Double
}

// MaxScalarSize is the widest inline scalar size on the wire (a Long,
// ULong or Double).
const MaxScalarSize = 8
