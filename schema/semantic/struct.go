package semantic

import (
	"strconv"
	"strings"

	"github.com/bearlytools/flatcore/fbtypes"
	"github.com/bearlytools/flatcore/schema/ast"
)

// structValidator carries the state struct validation needs: a
// registry to resolve references against, the already-validated
// enums, and memoization/cycle-detection for structs (which, unlike
// tables, may never reference themselves, since they're embedded
// inline rather than behind an indirection).
type structValidator struct {
	reg     *registry
	enums   map[string]*Enum
	memo    map[string]*Struct
	visited map[string]bool // currently on the DFS stack
	path    []string
}

func validateStructs(reg *registry, enums map[string]*Enum) (map[string]*Struct, error) {
	v := &structValidator{
		reg:     reg,
		enums:   enums,
		memo:    make(map[string]*Struct),
		visited: make(map[string]bool),
	}
	for _, d := range reg.order {
		if d.kind != declStruct {
			continue
		}
		if _, err := v.resolveStruct(d); err != nil {
			return nil, err
		}
	}
	return v.memo, nil
}

func (v *structValidator) resolveStruct(d *rawDecl) (*Struct, error) {
	ctx := qualify(d.namespace, d.name)
	if s, ok := v.memo[ctx]; ok {
		return s, nil
	}
	if v.visited[ctx] {
		cycle := append(append([]string{}, v.path...), ctx)
		return nil, &ValidationError{Context: ctx, Message: "cyclic dependency detected [" + strings.Join(cycle, " -> ") + "]"}
	}
	v.visited[ctx] = true
	v.path = append(v.path, ctx)
	defer func() {
		delete(v.visited, ctx)
		v.path = v.path[:len(v.path)-1]
	}()

	raw := d.strct
	if len(raw.Fields) == 0 {
		return nil, &ValidationError{Context: ctx, Message: "struct must declare at least one field"}
	}

	fields := make([]StructField, 0, len(raw.Fields))
	maxAlign := 1
	offset := 0

	for _, rf := range raw.Fields {
		fieldCtx := ctx + "." + rf.Name
		if rf.Deprecated {
			return nil, &ValidationError{Context: fieldCtx, Message: "struct fields cannot be deprecated"}
		}

		sf, err := v.resolveStructField(d.namespace, fieldCtx, rf)
		if err != nil {
			return nil, err
		}

		if sf.Align > 0 {
			pad := (sf.Align - offset%sf.Align) % sf.Align
			offset += pad
		}
		sf.Name = rf.Name
		sf.Offset = offset
		offset += sf.Size
		if sf.Align > maxAlign {
			maxAlign = sf.Align
		}
		fields = append(fields, sf)
	}

	align := maxAlign
	if raw.ForceAlign != nil {
		fa := *raw.ForceAlign
		if !isPowerOfTwo(fa) || fa < maxAlign || fa > 16 {
			return nil, &ValidationError{Context: ctx, Message: "force_align must be a power of two in [natural_alignment, 16]"}
		}
		align = fa
	}

	size := offset
	if rem := size % align; rem != 0 {
		size += align - rem
	}

	s := &Struct{Namespace: d.namespace, Name: d.name, Align: align, Size: size, Fields: fields}
	v.memo[ctx] = s
	return s, nil
}

func (v *structValidator) resolveStructField(namespace, fieldCtx string, rf ast.StructField) (StructField, error) {
	if rf.Type.Vector {
		return StructField{}, &ValidationError{Context: fieldCtx, Message: "vector fields are not allowed in a struct"}
	}
	if rf.Type.Name == ast.String {
		return StructField{}, &ValidationError{Context: fieldCtx, Message: "string fields are not allowed in a struct"}
	}

	if bt, ok := scalarBaseType(rf.Type.Name); ok {
		size := fbtypes.SizeOf(bt)
		return StructField{Kind: FieldScalar, Scalar: bt, Size: size, Align: size}, nil
	}

	d, candidates := v.reg.lookup(namespace, rf.Type)
	if d == nil {
		return StructField{}, &ValidationError{
			Context: fieldCtx,
			Message: "type " + strconv.Quote(rf.Type.Name) + " does not exist (checked in these namespaces: " + strings.Join(candidates, ", ") + ")",
		}
	}

	switch d.kind {
	case declEnum:
		qn := qualify(d.namespace, d.name)
		e, ok := v.enums[qn]
		if !ok {
			return StructField{}, &ValidationError{Context: fieldCtx, Message: "enum " + strconv.Quote(qn) + " failed validation"}
		}
		size := fbtypes.SizeOf(e.Underlying)
		return StructField{Kind: FieldEnum, Scalar: e.Underlying, Enum: e, Size: size, Align: size}, nil
	case declStruct:
		nested, err := v.resolveStruct(d)
		if err != nil {
			return StructField{}, err
		}
		return StructField{Kind: FieldStruct, Struct: nested, Size: nested.Size, Align: nested.Align}, nil
	case declTable, declUnion:
		return StructField{}, &ValidationError{Context: fieldCtx, Message: "table and union fields are not allowed in a struct"}
	}
	return StructField{}, &ValidationError{Context: fieldCtx, Message: "unreachable declaration kind"}
}
