package decoding

import (
	"encoding/binary"

	"github.com/bearlytools/flatcore/fbtypes"
)

// Table is a position in a buffer paired with that buffer, the
// decoder's basic navigator. Pos is the absolute byte offset of the
// table's soffset, i.e. the table's start.
type Table struct {
	Buf []byte
	Pos uint32
}

// RootTable reads the leading uoffset and returns the root table it
// points at.
func RootTable(buf []byte) (Table, error) {
	if len(buf) < 4 {
		return Table{}, &ParsingError{ByteOffset: 0, Message: "buffer too short to hold a root offset"}
	}
	pos := binary.LittleEndian.Uint32(buf)
	if uint64(pos) >= uint64(len(buf)) {
		return Table{}, &ParsingError{ByteOffset: 0, Message: "root offset points outside the buffer"}
	}
	return Table{Buf: buf, Pos: pos}, nil
}

// RootTableWithIdentifier is RootTable, but first verifies the 4-byte
// file identifier immediately following the root offset.
func RootTableWithIdentifier(buf []byte, identifier [4]byte) (Table, error) {
	if len(buf) < 8 {
		return Table{}, &ParsingError{ByteOffset: 0, Message: "buffer too short to hold a root offset and file identifier"}
	}
	if !HasIdentifier(buf, identifier) {
		return Table{}, &ParsingError{ByteOffset: 4, Message: "file identifier does not match"}
	}
	return RootTable(buf)
}

// HasIdentifier reports whether buf carries identifier at the position
// FinishWithFileIdentifier stamps it: bytes [4:8].
func HasIdentifier(buf []byte, identifier [4]byte) bool {
	if len(buf) < 8 {
		return false
	}
	return string(buf[4:8]) == string(identifier[:])
}

// vtable returns the absolute position of t's vtable.
func (t Table) vtable() (uint32, error) {
	if uint64(t.Pos)+4 > uint64(len(t.Buf)) {
		return 0, &ParsingError{ByteOffset: t.Pos, Message: "table start has no room for a soffset"}
	}
	soffset := int32(binary.LittleEndian.Uint32(t.Buf[t.Pos:]))
	vt := int64(t.Pos) - int64(soffset)
	if vt < 0 || uint64(vt)+4 > uint64(len(t.Buf)) {
		return 0, &ParsingError{ByteOffset: t.Pos, Message: "soffset points outside the buffer"}
	}
	return uint32(vt), nil
}

// fieldOffset returns the absolute position of the data for vtable
// slot, or 0 with no error if the field is absent: either outside the
// vtable's recorded range, or present with a voffset of 0. Both mean
// the same thing to every caller.
func (t Table) fieldOffset(slot fbtypes.VOffset) (uint32, error) {
	vt, err := t.vtable()
	if err != nil {
		return 0, err
	}
	vtableSize := binary.LittleEndian.Uint16(t.Buf[vt:])
	entryOffset := uint32(4 + int(slot)*2)
	if entryOffset+2 > uint32(vtableSize) {
		return 0, nil
	}
	pos := uint64(vt) + uint64(entryOffset)
	if pos+2 > uint64(len(t.Buf)) {
		return 0, &ParsingError{ByteOffset: uint32(pos), Message: "vtable entry out of bounds"}
	}
	vo := binary.LittleEndian.Uint16(t.Buf[pos:])
	if vo == 0 {
		return 0, nil
	}
	return t.Pos + uint32(vo), nil
}

// indirect follows the uoffset stored at addr and returns the absolute
// position it references.
func (t Table) indirect(addr uint32) (uint32, error) {
	if uint64(addr)+4 > uint64(len(t.Buf)) {
		return 0, &ParsingError{ByteOffset: addr, Message: "uoffset has no room to read"}
	}
	rel := binary.LittleEndian.Uint32(t.Buf[addr:])
	target := uint64(addr) + uint64(rel)
	if target > uint64(len(t.Buf)) {
		return 0, &ParsingError{ByteOffset: addr, Message: "uoffset points outside the buffer"}
	}
	return uint32(target), nil
}

// GetTable reads field slot as a nested table reference.
func (t Table) GetTable(slot fbtypes.VOffset) (Table, bool, error) {
	addr, err := t.fieldOffset(slot)
	if err != nil || addr == 0 {
		return Table{}, false, err
	}
	pos, err := t.indirect(addr)
	if err != nil {
		return Table{}, false, err
	}
	return Table{Buf: t.Buf, Pos: pos}, true, nil
}

// HasField reports whether slot is present, without reading its value.
func (t Table) HasField(slot fbtypes.VOffset) (bool, error) {
	off, err := t.fieldOffset(slot)
	if err != nil {
		return false, err
	}
	return off != 0, nil
}
