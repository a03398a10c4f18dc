package decoding

import "github.com/bearlytools/flatcore/fbtypes"

// Struct is a position inside a buffer holding a fixed-size, vtable-
// less value. Unlike Table, its fields sit at fixed byte offsets
// computed by the schema analyzer, not behind a vtable indirection.
type Struct struct {
	Buf []byte
	Pos uint32
}

// GetStruct reads field slot as an inline struct. Struct fields are
// never behind a uoffset: the vtable entry names the struct's own
// starting position directly.
func (t Table) GetStruct(slot uint16) (Struct, bool, error) {
	addr, err := t.fieldOffset(slot)
	if err != nil || addr == 0 {
		return Struct{}, false, err
	}
	return Struct{Buf: t.Buf, Pos: addr}, true, nil
}

// StructScalar reads a scalar field at byteOffset within s.
func StructScalar[T fbtypes.Scalar](s Struct, byteOffset uint32) (T, error) {
	return readScalar[T](s.Buf, s.Pos+byteOffset)
}

// Nested returns the nested struct embedded at byteOffset within s.
func (s Struct) Nested(byteOffset uint32) Struct {
	return Struct{Buf: s.Buf, Pos: s.Pos + byteOffset}
}
