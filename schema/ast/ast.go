// Package ast describes the raw, unvalidated shape a schema parser
// hands to the semantic analyzer: a rose tree of Schema values joined
// by Includes. It names the same declarations Claw's idl.File once
// did — Enum, Struct, and their fields — but in FlatBuffers'
// vocabulary (tables, structs, unions) rather than Claw's, and
// without the halfpike-based lexer/parser that produces it: building
// an ast.Schema from .fbs text is out of scope here, the way it is for
// every caller that already has a parsed tree.
package ast

// BaseType names a scalar or reference kind a TypeRef may resolve to
// before the semantic analyzer has looked it up.
type BaseType = string

// Well-known scalar type names a TypeRef.Name may hold directly,
// without needing namespace resolution.
const (
	Bool    BaseType = "bool"
	Int8    BaseType = "int8"
	UInt8   BaseType = "uint8"
	Int16   BaseType = "int16"
	UInt16  BaseType = "uint16"
	Int32   BaseType = "int32"
	UInt32  BaseType = "uint32"
	Int64   BaseType = "int64"
	UInt64  BaseType = "uint64"
	Float32 BaseType = "float32"
	Float64 BaseType = "float64"
	String  BaseType = "string"
)

// TypeRef is an unresolved reference to a scalar or a named
// declaration, as written in the schema source.
type TypeRef struct {
	// Name is either one of the scalar BaseType constants, or a
	// possibly-unqualified identifier the analyzer must resolve
	// against the namespace-walk-up rules.
	Name string
	// Vector is true when the field's wire type is `[Name]` rather
	// than bare `Name`.
	Vector bool
}

// EnumMember is one `identifier[ = value]` line inside an enum.
type EnumMember struct {
	Name  string
	Value *int64 // nil means "auto-assign previous + 1, starting at 0"
}

// EnumDecl is a raw, not-yet-validated enum declaration.
type EnumDecl struct {
	Namespace string
	Name      string
	Underlying TypeRef // must name an integral scalar
	Members   []EnumMember
	BitFlags  bool // rejected by the analyzer; carried through so it can report why
}

// StructField is one field of a raw struct declaration.
type StructField struct {
	Name       string
	Type       TypeRef
	Deprecated bool
}

// StructDecl is a raw, not-yet-validated struct declaration.
type StructDecl struct {
	Namespace string
	Name      string
	Fields    []StructField
	// ForceAlign mirrors a `force_align: N` attribute, nil if absent.
	ForceAlign *int
}

// Literal is a parsed scalar default value attached to a table field.
type Literal struct {
	// Exactly one of these is meaningful, selected by the field's
	// resolved type.
	Int   int64
	Float float64
	Bool  bool
}

// TableField is one field of a raw table declaration.
type TableField struct {
	Name       string
	Type       TypeRef
	Default    *Literal
	Required   bool
	Deprecated bool
	// ID mirrors an explicit `id: N` attribute; nil means "assign by
	// declaration order".
	ID *int
}

// TableDecl is a raw, not-yet-validated table declaration.
type TableDecl struct {
	Namespace string
	Name      string
	Fields    []TableField
}

// UnionMember is one alternative of a raw union declaration.
type UnionMember struct {
	Name string
	Type TypeRef
}

// UnionDecl is a raw, not-yet-validated union declaration.
type UnionDecl struct {
	Namespace string
	Name      string
	Members   []UnionMember
}

// Schema is one parsed file's declarations plus the Schemas it
// includes, forming the rose tree the analyzer flattens. Namespace is
// the namespace in effect at the top of the file — the one the most
// recent `namespace` directive set before the first declaration.
type Schema struct {
	Namespace string
	Includes  []*Schema
	Enums     []*EnumDecl
	Structs   []*StructDecl
	Tables    []*TableDecl
	Unions    []*UnionDecl
	// RootType names the type `root_type` declared for this schema, if
	// any.
	RootType *TypeRef
}
