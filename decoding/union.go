package decoding

// GetUnionTag reads a union field's type tag. A tag of 0 means the
// union is absent ("none").
func (t Table) GetUnionTag(tagSlot uint16) (uint8, error) {
	return GetScalar[uint8](t, tagSlot, 0)
}

// GetUnionTable reads the table-valued payload of a union field once
// its tag has been read and resolved to a table member.
func (t Table) GetUnionTable(valueSlot uint16) (Table, bool, error) {
	return t.GetTable(valueSlot)
}

// GetUnionString reads the string-valued payload of a union field, for
// schemas whose union includes a `string` member.
func (t Table) GetUnionString(valueSlot uint16) (string, bool, error) {
	return t.GetString(valueSlot)
}
