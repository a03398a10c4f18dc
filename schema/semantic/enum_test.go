package semantic

import (
	"testing"

	"github.com/bearlytools/flatcore/schema/ast"
)

func int64p(v int64) *int64 { return &v }

func TestValidateEnumsAutoAssignsAscendingValues(t *testing.T) {
	schema := &ast.Schema{
		Enums: []*ast.EnumDecl{
			{
				Name:       "Color",
				Underlying: ast.TypeRef{Name: ast.Int16},
				Members: []ast.EnumMember{
					{Name: "Red"},
					{Name: "Green"},
					{Name: "Blue"},
				},
			},
		},
	}
	enums, err := validateEnums(flatten(schema))
	if err != nil {
		t.Fatalf("validateEnums: %s", err)
	}
	e := enums["Color"]
	if e == nil {
		t.Fatal("Color not found in validated enums")
	}
	want := []EnumMember{{Name: "Red", Value: 0}, {Name: "Green", Value: 1}, {Name: "Blue", Value: 2}}
	for i, m := range want {
		if e.Members[i] != m {
			t.Errorf("Members[%d] = %+v, want %+v", i, e.Members[i], m)
		}
	}
}

func TestValidateEnumsRejectsBitFlags(t *testing.T) {
	schema := &ast.Schema{
		Enums: []*ast.EnumDecl{
			{
				Name:       "Flags",
				Underlying: ast.TypeRef{Name: ast.Int32},
				BitFlags:   true,
				Members:    []ast.EnumMember{{Name: "A"}},
			},
		},
	}
	if _, err := validateEnums(flatten(schema)); err == nil {
		t.Error("validateEnums on a bit_flags enum: got nil error, want one")
	}
}

func TestValidateEnumsRejectsNonAscendingValues(t *testing.T) {
	schema := &ast.Schema{
		Enums: []*ast.EnumDecl{
			{
				Name:       "Color",
				Underlying: ast.TypeRef{Name: ast.Int16},
				Members: []ast.EnumMember{
					{Name: "A", Value: int64p(5)},
					{Name: "B", Value: int64p(3)},
				},
			},
		},
	}
	if _, err := validateEnums(flatten(schema)); err == nil {
		t.Error("validateEnums with non-ascending explicit values: got nil error, want one")
	}
}

func TestValidateEnumsRejectsDuplicateMemberNames(t *testing.T) {
	schema := &ast.Schema{
		Enums: []*ast.EnumDecl{
			{
				Name:       "Color",
				Underlying: ast.TypeRef{Name: ast.Int16},
				Members: []ast.EnumMember{
					{Name: "Red"},
					{Name: "Red"},
				},
			},
		},
	}
	if _, err := validateEnums(flatten(schema)); err == nil {
		t.Error("validateEnums with a duplicate member name: got nil error, want one")
	}
}

func TestValidateEnumsRejectsOutOfRangeValue(t *testing.T) {
	schema := &ast.Schema{
		Enums: []*ast.EnumDecl{
			{
				Name:       "Small",
				Underlying: ast.TypeRef{Name: ast.Int8},
				Members: []ast.EnumMember{
					{Name: "TooBig", Value: int64p(1000)},
				},
			},
		},
	}
	if _, err := validateEnums(flatten(schema)); err == nil {
		t.Error("validateEnums with a value out of range for int8: got nil error, want one")
	}
}

func TestValidateEnumsRejectsNonIntegralUnderlying(t *testing.T) {
	schema := &ast.Schema{
		Enums: []*ast.EnumDecl{
			{
				Name:       "Bad",
				Underlying: ast.TypeRef{Name: ast.Float32},
				Members:    []ast.EnumMember{{Name: "A"}},
			},
		},
	}
	if _, err := validateEnums(flatten(schema)); err == nil {
		t.Error("validateEnums with a float underlying type: got nil error, want one")
	}
}

func TestValidateEnumsRejectsEmptyEnum(t *testing.T) {
	schema := &ast.Schema{
		Enums: []*ast.EnumDecl{
			{Name: "Empty", Underlying: ast.TypeRef{Name: ast.Int8}},
		},
	}
	if _, err := validateEnums(flatten(schema)); err == nil {
		t.Error("validateEnums on an enum with no members: got nil error, want one")
	}
}
