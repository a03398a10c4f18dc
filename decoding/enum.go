package decoding

import "github.com/bearlytools/flatcore/fbtypes"

// GetEnum reads an integer-backed enum field and checks the value
// against members, the generated set of valid underlying values for
// that enum. An unrecognized value is reported rather than silently
// accepted, since schema evolution can add enum members a reader
// built against an older schema doesn't know about.
func GetEnum[T fbtypes.Number](t Table, slot uint16, def T, name string, members []T) (T, error) {
	v, err := GetScalar(t, slot, def)
	if err != nil {
		return def, err
	}
	for _, m := range members {
		if m == v {
			return v, nil
		}
	}
	return def, &EnumUnknown{Name: name, Value: enumValueInt64(v)}
}

func enumValueInt64[T fbtypes.Number](v T) int64 {
	switch x := any(v).(type) {
	case int8:
		return int64(x)
	case uint8:
		return int64(x)
	case int16:
		return int64(x)
	case uint16:
		return int64(x)
	case int32:
		return int64(x)
	case uint32:
		return int64(x)
	case int64:
		return x
	case uint64:
		return int64(x)
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	}
	return 0
}
