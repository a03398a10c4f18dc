package semantic

import (
	"strconv"
	"strings"

	"github.com/bearlytools/flatcore/schema/ast"
)

// objectValidator validates tables and unions together: they may
// reference each other, including themselves, since both are always
// accessed through a uoffset indirection rather than embedded inline —
// unlike structs, self-reference is legal here, so a table or union
// already "in progress" is simply handed back by pointer instead of
// being treated as a cycle error.
type objectValidator struct {
	reg     *registry
	enums   map[string]*Enum
	structs map[string]*Struct

	tables map[string]*Table
	unions map[string]*Union
}

func validateTablesAndUnions(reg *registry, enums map[string]*Enum, structs map[string]*Struct) (map[string]*Table, map[string]*Union, error) {
	v := &objectValidator{
		reg:     reg,
		enums:   enums,
		structs: structs,
		tables:  make(map[string]*Table),
		unions:  make(map[string]*Union),
	}
	for _, d := range reg.order {
		switch d.kind {
		case declTable:
			if _, err := v.resolveTable(d); err != nil {
				return nil, nil, err
			}
		case declUnion:
			if _, err := v.resolveUnion(d); err != nil {
				return nil, nil, err
			}
		}
	}
	return v.tables, v.unions, nil
}

func (v *objectValidator) resolveTable(d *rawDecl) (*Table, error) {
	ctx := qualify(d.namespace, d.name)
	if t, ok := v.tables[ctx]; ok {
		return t, nil
	}
	t := &Table{Namespace: d.namespace, Name: d.name}
	v.tables[ctx] = t // registered before fields resolve: self-reference is legal

	raw := d.table
	fields := make([]TableField, 0, len(raw.Fields))
	used := make(map[int]bool)
	nextSlot := 0

	for _, rf := range raw.Fields {
		fieldCtx := ctx + "." + rf.Name
		slot := nextSlot
		if rf.ID != nil {
			slot = *rf.ID
		}
		if used[slot] {
			t.Fields = fields
			msg := "duplicate field id " + strconv.Itoa(slot)
			if prior := t.FieldBySlot(slot); prior != nil {
				msg += ", already claimed by field " + strconv.Quote(prior.Name)
			}
			return nil, &ValidationError{Context: fieldCtx, Message: msg}
		}
		used[slot] = true
		if slot >= nextSlot {
			nextSlot = slot + 1
		}

		if rf.Deprecated {
			continue // present in the schema, but contributes no wire slot
		}

		tf, err := v.resolveTableField(d.namespace, fieldCtx, rf)
		if err != nil {
			return nil, err
		}
		tf.Name = rf.Name
		tf.Slot = slot
		fields = append(fields, tf)
	}

	t.Fields = fields
	return t, nil
}

func (v *objectValidator) resolveTableField(namespace, fieldCtx string, rf ast.TableField) (TableField, error) {
	if rf.Type.Name == ast.String {
		return TableField{Type: pick(rf.Type.Vector, TFVectorString, TFString), Required: rf.Required}, nil
	}

	if bt, ok := scalarBaseType(rf.Type.Name); ok {
		tf := TableField{Scalar: bt}
		if rf.Type.Vector {
			tf.Type = TFVectorScalar
			tf.Required = rf.Required
		} else {
			tf.Type = TFScalar
			if rf.Default != nil {
				if isIntegral(bt) && !fitsUnderlying(bt, rf.Default.Int) {
					return TableField{}, &ValidationError{Context: fieldCtx, Message: "default value " + strconv.FormatInt(rf.Default.Int, 10) + " does not fit " + rf.Type.Name}
				}
				tf.Default = Literal{Int: rf.Default.Int, Float: rf.Default.Float, Bool: rf.Default.Bool}
			}
		}
		return tf, nil
	}

	d, candidates := v.reg.lookup(namespace, rf.Type)
	if d == nil {
		return TableField{}, &ValidationError{
			Context: fieldCtx,
			Message: "type " + strconv.Quote(rf.Type.Name) + " does not exist (checked in these namespaces: " + strings.Join(candidates, ", ") + ")",
		}
	}

	switch d.kind {
	case declEnum:
		qn := qualify(d.namespace, d.name)
		e, ok := v.enums[qn]
		if !ok {
			return TableField{}, &ValidationError{Context: fieldCtx, Message: "enum " + strconv.Quote(qn) + " failed validation"}
		}
		tf := TableField{Type: pick(rf.Type.Vector, TFVectorEnum, TFEnum), Enum: e, Scalar: e.Underlying}
		if !rf.Type.Vector && rf.Default != nil {
			if !e.HasValue(rf.Default.Int) {
				return TableField{}, &ValidationError{Context: fieldCtx, Message: "default value " + strconv.FormatInt(rf.Default.Int, 10) + " is not a member of enum " + strconv.Quote(qn)}
			}
			tf.Default = Literal{Int: rf.Default.Int}
		}
		if rf.Type.Vector {
			tf.Required = rf.Required
		}
		return tf, nil
	case declStruct:
		qn := qualify(d.namespace, d.name)
		s, ok := v.structs[qn]
		if !ok {
			return TableField{}, &ValidationError{Context: fieldCtx, Message: "struct " + strconv.Quote(qn) + " failed validation"}
		}
		return TableField{Type: pick(rf.Type.Vector, TFVectorStruct, TFStruct), Struct: s, Required: rf.Required}, nil
	case declTable:
		nested, err := v.resolveTable(d)
		if err != nil {
			return TableField{}, err
		}
		return TableField{Type: pick(rf.Type.Vector, TFVectorTable, TFTable), Table: nested, Required: rf.Required}, nil
	case declUnion:
		u, err := v.resolveUnion(d)
		if err != nil {
			return TableField{}, err
		}
		return TableField{Type: pick(rf.Type.Vector, TFVectorUnion, TFUnion), Union: u, Required: rf.Required}, nil
	}
	return TableField{}, &ValidationError{Context: fieldCtx, Message: "unreachable declaration kind"}
}

func (v *objectValidator) resolveUnion(d *rawDecl) (*Union, error) {
	ctx := qualify(d.namespace, d.name)
	if u, ok := v.unions[ctx]; ok {
		return u, nil
	}
	u := &Union{Namespace: d.namespace, Name: d.name}
	v.unions[ctx] = u

	raw := d.union
	if len(raw.Members) == 0 {
		return nil, &ValidationError{Context: ctx, Message: "union must declare at least one member"}
	}

	members := make([]UnionMember, 0, len(raw.Members))
	for _, rm := range raw.Members {
		memberCtx := ctx + "." + rm.Name
		td, candidates := v.reg.lookup(d.namespace, rm.Type)
		if td == nil || td.kind != declTable {
			if td == nil {
				return nil, &ValidationError{
					Context: memberCtx,
					Message: "type " + strconv.Quote(rm.Type.Name) + " does not exist (checked in these namespaces: " + strings.Join(candidates, ", ") + ")",
				}
			}
			return nil, &ValidationError{Context: memberCtx, Message: "union members must be tables"}
		}
		t, err := v.resolveTable(td)
		if err != nil {
			return nil, err
		}
		members = append(members, UnionMember{Name: rm.Name, Table: t})
	}

	u.Members = members
	return u, nil
}

func pick(vector bool, ifVector, ifNot TableFieldType) TableFieldType {
	if vector {
		return ifVector
	}
	return ifNot
}
