package semantic

import (
	"strconv"

	"github.com/bearlytools/flatcore/fbtypes"
)

// validateEnums checks every enum in reg, independent of
// structs/tables/unions: bit_flags is rejected, members get ascending
// auto-assigned values starting at 0 when unspecified, and every value
// must fit the enum's underlying integral type.
func validateEnums(reg *registry) (map[string]*Enum, error) {
	out := make(map[string]*Enum)
	for _, d := range reg.order {
		if d.kind != declEnum {
			continue
		}
		e := d.enum
		ctx := qualify(e.Namespace, e.Name)

		if e.BitFlags {
			return nil, &ValidationError{Context: ctx, Message: "bit_flags enums are not supported"}
		}

		underlying, ok := scalarBaseType(e.Underlying.Name)
		if !ok || !isIntegral(underlying) || underlying == fbtypes.Bool {
			return nil, &ValidationError{Context: ctx, Message: "enum underlying type must be an integral scalar"}
		}

		if len(e.Members) == 0 {
			return nil, &ValidationError{Context: ctx, Message: "enum must declare at least one member"}
		}

		members := make([]EnumMember, 0, len(e.Members))
		seen := make(map[string]bool, len(e.Members))
		next := int64(0)
		haveValue := false
		var prev int64

		for _, m := range e.Members {
			if seen[m.Name] {
				return nil, &ValidationError{Context: ctx, Message: "duplicate enum member " + strconv.Quote(m.Name)}
			}
			seen[m.Name] = true

			v := next
			if m.Value != nil {
				v = *m.Value
			}
			if haveValue && v <= prev {
				return nil, &ValidationError{Context: ctx, Message: "enum values must be strictly ascending"}
			}
			if !fitsUnderlying(underlying, v) {
				return nil, &ValidationError{Context: ctx, Message: "enum value " + strconv.FormatInt(v, 10) + " does not fit its underlying type"}
			}

			members = append(members, EnumMember{Name: m.Name, Value: v})
			prev, haveValue, next = v, true, v+1
		}

		out[ctx] = &Enum{
			Namespace:  e.Namespace,
			Name:       e.Name,
			Underlying: underlying,
			Members:    members,
		}
	}
	return out, nil
}
