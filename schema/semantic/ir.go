package semantic

import "github.com/bearlytools/flatcore/fbtypes"

// EnumMember is one validated, value-assigned enum member.
type EnumMember struct {
	Name  string
	Value int64
}

// Enum is a fully validated enum declaration.
type Enum struct {
	Namespace  string
	Name       string
	Underlying fbtypes.BaseType
	Members    []EnumMember
}

// QualifiedName returns namespace.Name, or just Name with no namespace.
func (e *Enum) QualifiedName() string { return qualify(e.Namespace, e.Name) }

// HasValue reports whether v matches one of e's declared members.
func (e *Enum) HasValue(v int64) bool {
	for _, m := range e.Members {
		if m.Value == v {
			return true
		}
	}
	return false
}

// FieldKind distinguishes what a StructField leaf holds.
type FieldKind uint8

const (
	FieldScalar FieldKind = iota
	FieldEnum
	FieldStruct
)

// StructField is one validated field of a struct: a scalar, an
// enum-typed leaf, or a nested struct, laid out at a fixed byte offset.
type StructField struct {
	Name   string
	Kind   FieldKind
	Scalar fbtypes.BaseType // meaningful for FieldScalar and FieldEnum (underlying wire type)
	Enum   *Enum            // meaningful for FieldEnum
	Struct *Struct          // meaningful for FieldStruct
	Offset int
	Size   int
	Align  int
}

// Struct is a fully validated struct declaration.
type Struct struct {
	Namespace string
	Name      string
	Align     int
	Size      int
	Fields    []StructField
}

// QualifiedName returns namespace.Name, or just Name with no namespace.
func (s *Struct) QualifiedName() string { return qualify(s.Namespace, s.Name) }

// TableFieldType enumerates the wire shapes a table field can take.
type TableFieldType uint8

const (
	TFScalar TableFieldType = iota
	TFEnum
	TFString
	TFStruct
	TFTable
	TFVectorScalar
	TFVectorEnum
	TFVectorString
	TFVectorStruct
	TFVectorTable
	TFUnion
	TFVectorUnion
)

// Literal mirrors ast.Literal in the validated IR.
type Literal struct {
	Int   int64
	Float float64
	Bool  bool
}

// TableField is one validated field of a table, with its assigned
// vtable Slot: an explicit `id:` attribute is honored when present;
// otherwise fields are numbered by declaration order.
type TableField struct {
	Name     string
	Type     TableFieldType
	Slot     int
	Scalar   fbtypes.BaseType
	Enum     *Enum
	Struct   *Struct
	Table    *Table
	Union    *Union
	Default  Literal
	Required bool
}

// Table is a fully validated table declaration.
type Table struct {
	Namespace string
	Name      string
	Fields    []TableField
}

// QualifiedName returns namespace.Name, or just Name with no namespace.
func (t *Table) QualifiedName() string { return qualify(t.Namespace, t.Name) }

// FieldBySlot finds the field assigned to the given vtable slot, or
// nil if none.
func (t *Table) FieldBySlot(slot int) *TableField {
	for i := range t.Fields {
		if t.Fields[i].Slot == slot {
			return &t.Fields[i]
		}
	}
	return nil
}

// UnionMember is one validated union alternative. Slot 0 is reserved
// for NONE and is never a real member.
type UnionMember struct {
	Name  string
	Table *Table
}

// Union is a fully validated union declaration.
type Union struct {
	Namespace string
	Name      string
	Members   []UnionMember // Members[i] has tag i+1
}

// QualifiedName returns namespace.Name, or just Name with no namespace.
func (u *Union) QualifiedName() string { return qualify(u.Namespace, u.Name) }

// TagFor returns the 1-based tag for a member name, or 0 (none/unknown).
func (u *Union) TagFor(name string) uint8 {
	for i, m := range u.Members {
		if m.Name == name {
			return uint8(i + 1)
		}
	}
	return 0
}

// IR is the complete, cross-referenced output of the semantic
// analyzer, keyed by qualified name within each declaration kind.
type IR struct {
	Enums   map[string]*Enum
	Structs map[string]*Struct
	Tables  map[string]*Table
	Unions  map[string]*Union
	// Root is the table named by this schema's `root_type`, if any.
	Root *Table
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}
