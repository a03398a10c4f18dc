package decoding

import (
	"encoding/binary"

	"github.com/bearlytools/flatcore/fbtypes"
)

// Vector is a position inside a buffer where a u32 element count is
// immediately followed by the elements themselves, inline or as
// uoffsets depending on element type.
type Vector struct {
	Buf []byte
	Pos uint32
}

// GetVector reads field slot as a vector reference.
func (t Table) GetVector(slot uint16) (Vector, bool, error) {
	addr, err := t.fieldOffset(slot)
	if err != nil || addr == 0 {
		return Vector{}, false, err
	}
	pos, err := t.indirect(addr)
	if err != nil {
		return Vector{}, false, err
	}
	return Vector{Buf: t.Buf, Pos: pos}, true, nil
}

// Len returns the vector's element count.
func (v Vector) Len() (uint32, error) {
	if uint64(v.Pos)+4 > uint64(len(v.Buf)) {
		return 0, &ParsingError{ByteOffset: v.Pos, Message: "vector length prefix out of bounds"}
	}
	return binary.LittleEndian.Uint32(v.Buf[v.Pos:]), nil
}

func (v Vector) elementAddr(index uint32, elemSize uint32) (uint32, error) {
	n, err := v.Len()
	if err != nil {
		return 0, err
	}
	if index >= n {
		return 0, &VectorIndexOutOfBounds{Length: n, Index: index}
	}
	start := uint64(v.Pos) + 4 + uint64(index)*uint64(elemSize)
	if start+uint64(elemSize) > uint64(len(v.Buf)) {
		return 0, &ParsingError{ByteOffset: uint32(start), Message: "vector element out of bounds"}
	}
	return uint32(start), nil
}

// VectorScalar reads the scalar element at index from an inline-scalar
// vector.
func VectorScalar[T fbtypes.Scalar](v Vector, index uint32) (T, error) {
	var zero T
	addr, err := v.elementAddr(index, uint32(scalarByteSize(zero)))
	if err != nil {
		return zero, err
	}
	return readScalar[T](v.Buf, addr)
}

// String reads the string element at index from a vector of strings.
func (v Vector) String(index uint32) (string, error) {
	addr, err := v.elementAddr(index, 4)
	if err != nil {
		return "", err
	}
	t := Table{Buf: v.Buf}
	return t.readString(addr)
}

// Table reads the table element at index from a vector of tables.
func (v Vector) Table(index uint32) (Table, error) {
	addr, err := v.elementAddr(index, 4)
	if err != nil {
		return Table{}, err
	}
	t := Table{Buf: v.Buf}
	pos, err := t.indirect(addr)
	if err != nil {
		return Table{}, err
	}
	return Table{Buf: v.Buf, Pos: pos}, nil
}

// Struct reads the inline struct element at index from a vector of
// structs, each elemSize bytes wide.
func (v Vector) Struct(index, elemSize uint32) (Struct, error) {
	addr, err := v.elementAddr(index, elemSize)
	if err != nil {
		return Struct{}, err
	}
	return Struct{Buf: v.Buf, Pos: addr}, nil
}

// UnionTag reads the u8 type tag at index from the type vector of a
// vector-of-union field.
func (v Vector) UnionTag(index uint32) (uint8, error) {
	addr, err := v.elementAddr(index, 1)
	if err != nil {
		return 0, err
	}
	return v.Buf[addr], nil
}
