package decoding

import (
	"github.com/bearlytools/flatcore/fbtypes"
	"github.com/bearlytools/flatcore/internal/binary"
)

// GetScalar reads field slot, returning def when it is absent — the
// default-elision counterpart of encoding.WriteScalarSlot.
func GetScalar[T fbtypes.Scalar](t Table, slot fbtypes.VOffset, def T) (T, error) {
	addr, err := t.fieldOffset(slot)
	if err != nil {
		return def, err
	}
	if addr == 0 {
		return def, nil
	}
	return readScalar[T](t.Buf, addr)
}

// RequiredScalar reads field slot, or reports MissingField if absent.
// fieldName is used only for that error.
func RequiredScalar[T fbtypes.Scalar](t Table, slot fbtypes.VOffset, fieldName string) (T, error) {
	var zero T
	addr, err := t.fieldOffset(slot)
	if err != nil {
		return zero, err
	}
	if addr == 0 {
		return zero, &MissingField{FieldName: fieldName}
	}
	return readScalar[T](t.Buf, addr)
}

func readScalar[T fbtypes.Scalar](buf []byte, addr uint32) (T, error) {
	var zero T
	size := binary.Size(zero)
	if uint64(addr)+uint64(size) > uint64(len(buf)) {
		return zero, &ParsingError{ByteOffset: addr, Message: "scalar read past end of buffer"}
	}
	return binary.Get[T](buf[addr:]), nil
}

func scalarByteSize[T fbtypes.Scalar](v T) int {
	return binary.Size(v)
}
