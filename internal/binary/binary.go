// Package binary is the one little-endian codec shared by the encoder
// and the decoder, so the wire format's byte layout is defined in
// exactly one place. It generalizes Claw's own internal/binary
// (originally Get/Put over constraints.Integer) to fbtypes.Scalar,
// adding bool and floating-point support the wire format also needs.
package binary

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bearlytools/flatcore/fbtypes"
)

// Enc is the byte order every FlatBuffers value is written and read
// in, regardless of host architecture.
var Enc = binary.LittleEndian

// Get decodes a T from the start of b. b must hold at least
// sizeof(T) bytes.
func Get[T fbtypes.Scalar](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(b[0] != 0).(T)
	case int8:
		return any(int8(b[0])).(T)
	case uint8:
		return any(b[0]).(T)
	case int16:
		return any(int16(Enc.Uint16(b))).(T)
	case uint16:
		return any(Enc.Uint16(b)).(T)
	case int32:
		return any(int32(Enc.Uint32(b))).(T)
	case uint32:
		return any(Enc.Uint32(b)).(T)
	case int64:
		return any(int64(Enc.Uint64(b))).(T)
	case uint64:
		return any(Enc.Uint64(b)).(T)
	case float32:
		return any(math.Float32frombits(Enc.Uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(Enc.Uint64(b))).(T)
	}
	panic(fmt.Sprintf("binary.Get: unsupported type %T", zero))
}

// Put encodes v into the start of b. b must hold at least sizeof(T)
// bytes.
func Put[T fbtypes.Scalar](b []byte, v T) {
	switch x := any(v).(type) {
	case bool:
		if x {
			b[0] = 1
		} else {
			b[0] = 0
		}
	case int8:
		b[0] = byte(x)
	case uint8:
		b[0] = x
	case int16:
		Enc.PutUint16(b, uint16(x))
	case uint16:
		Enc.PutUint16(b, x)
	case int32:
		Enc.PutUint32(b, uint32(x))
	case uint32:
		Enc.PutUint32(b, x)
	case int64:
		Enc.PutUint64(b, uint64(x))
	case uint64:
		Enc.PutUint64(b, x)
	case float32:
		Enc.PutUint32(b, math.Float32bits(x))
	case float64:
		Enc.PutUint64(b, math.Float64bits(x))
	default:
		panic(fmt.Sprintf("binary.Put: unsupported type %T", v))
	}
}

// Size returns sizeof(T) in bytes for any Scalar.
func Size[T fbtypes.Scalar](v T) int {
	switch any(v).(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}
