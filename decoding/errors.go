// Package decoding reads FlatBuffers-encoded buffers without copying
// them, mirroring the zero-copy navigation style Claw's own
// languages/go/structs/decode.go once used here but walking vtables
// and uoffsets instead of Claw's bitpacked headers.
//
// Every function here is total: malformed input produces one of the
// error types below, never a panic.
package decoding

import "strconv"

// ParsingError reports a structural problem at a specific byte offset:
// a truncated buffer, an offset pointing outside it, or a vtable whose
// declared size doesn't fit.
type ParsingError struct {
	ByteOffset uint32
	Message    string
}

func (e *ParsingError) Error() string {
	return "decoding: at byte " + strconv.FormatUint(uint64(e.ByteOffset), 10) + ": " + e.Message
}

// MissingField reports that a required field's vtable slot was absent.
type MissingField struct {
	FieldName string
}

func (e *MissingField) Error() string {
	return "decoding: required field " + strconv.Quote(e.FieldName) + " is missing"
}

// Utf8DecodingError reports a string field whose bytes are not valid
// UTF-8. Byte holds the index of the first offending byte when known.
type Utf8DecodingError struct {
	Message string
	Byte    *int
}

func (e *Utf8DecodingError) Error() string {
	if e.Byte != nil {
		return "decoding: invalid UTF-8 at byte " + strconv.Itoa(*e.Byte) + ": " + e.Message
	}
	return "decoding: invalid UTF-8: " + e.Message
}

// VectorIndexOutOfBounds reports an index request past a vector's
// declared length.
type VectorIndexOutOfBounds struct {
	Length uint32
	Index  uint32
}

func (e *VectorIndexOutOfBounds) Error() string {
	return "decoding: vector index " + strconv.FormatUint(uint64(e.Index), 10) +
		" out of bounds for length " + strconv.FormatUint(uint64(e.Length), 10)
}

// EnumUnknown reports a scalar value with no matching enum member.
type EnumUnknown struct {
	Name  string
	Value int64
}

func (e *EnumUnknown) Error() string {
	return "decoding: " + strconv.Quote(e.Name) + " has no enum value " + strconv.FormatInt(e.Value, 10)
}

// UnionUnknown reports a union type tag with no matching member.
type UnionUnknown struct {
	Name string
	Tag  uint8
}

func (e *UnionUnknown) Error() string {
	return "decoding: " + strconv.Quote(e.Name) + " has no union member for tag " + strconv.Itoa(int(e.Tag))
}
