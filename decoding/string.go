package decoding

import (
	"encoding/binary"
	"unicode/utf8"
)

// GetString reads a string field. present is false when the field's
// vtable slot is absent; callers apply their own schema default in
// that case.
func (t Table) GetString(slot uint16) (value string, present bool, err error) {
	addr, err := t.fieldOffset(slot)
	if err != nil || addr == 0 {
		return "", false, err
	}
	s, err := t.readString(addr)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// RequiredString is GetString but reports MissingField instead of
// returning present=false.
func (t Table) RequiredString(slot uint16, fieldName string) (string, error) {
	s, present, err := t.GetString(slot)
	if err != nil {
		return "", err
	}
	if !present {
		return "", &MissingField{FieldName: fieldName}
	}
	return s, nil
}

func (t Table) readString(addr uint32) (string, error) {
	pos, err := t.indirect(addr)
	if err != nil {
		return "", err
	}
	if uint64(pos)+4 > uint64(len(t.Buf)) {
		return "", &ParsingError{ByteOffset: pos, Message: "string length prefix out of bounds"}
	}
	length := binary.LittleEndian.Uint32(t.Buf[pos:])
	start := uint64(pos) + 4
	end := start + uint64(length)
	if end > uint64(len(t.Buf)) {
		return "", &ParsingError{ByteOffset: pos, Message: "string content runs past the end of the buffer"}
	}
	raw := t.Buf[start:end]
	if !utf8.Valid(raw) {
		idx := firstInvalidByte(raw)
		return "", &Utf8DecodingError{Message: "string field is not valid UTF-8", Byte: &idx}
	}
	return string(raw), nil
}

func firstInvalidByte(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
