package semantic

import (
	"math"

	"github.com/bearlytools/flatcore/fbtypes"
)

func scalarBaseType(name string) (fbtypes.BaseType, bool) {
	switch name {
	case "bool":
		return fbtypes.Bool, true
	case "int8", "byte":
		return fbtypes.Byte, true
	case "uint8", "ubyte":
		return fbtypes.UByte, true
	case "int16", "short":
		return fbtypes.Short, true
	case "uint16", "ushort":
		return fbtypes.UShort, true
	case "int32", "int":
		return fbtypes.Int, true
	case "uint32", "uint":
		return fbtypes.UInt, true
	case "int64", "long":
		return fbtypes.Long, true
	case "uint64", "ulong":
		return fbtypes.ULong, true
	case "float32", "float":
		return fbtypes.Float, true
	case "float64", "double":
		return fbtypes.Double, true
	}
	return fbtypes.Unknown, false
}

func isIntegral(t fbtypes.BaseType) bool {
	switch t {
	case fbtypes.Byte, fbtypes.UByte, fbtypes.Short, fbtypes.UShort,
		fbtypes.Int, fbtypes.UInt, fbtypes.Long, fbtypes.ULong, fbtypes.Bool:
		return true
	}
	return false
}

// fitsUnderlying reports whether v is in range for t, one of the
// integral BaseTypes.
func fitsUnderlying(t fbtypes.BaseType, v int64) bool {
	switch t {
	case fbtypes.Bool:
		return v == 0 || v == 1
	case fbtypes.Byte:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case fbtypes.UByte:
		return v >= 0 && v <= math.MaxUint8
	case fbtypes.Short:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case fbtypes.UShort:
		return v >= 0 && v <= math.MaxUint16
	case fbtypes.Int:
		return v >= math.MinInt32 && v <= math.MaxInt32
	case fbtypes.UInt:
		return v >= 0 && v <= math.MaxUint32
	case fbtypes.Long, fbtypes.ULong:
		return true // int64 already bounds these; ULong's upper half is a known FlatBuffers limitation
	}
	return false
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
