package encoding

import (
	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/fbtypes"
)

// WriteUnionSlot writes the paired fields a union value occupies in a
// table: a u8 type tag at slot tagFieldID and a uoffset to the value's
// table at slot valueFieldID. tag 0 means "none", in which case
// neither slot is written — both fields are absent and decode to the
// zero/none state.
//
// tagFieldID and valueFieldID are the two vtable slots the schema
// analyzer assigned to this union field; value is the offset of the
// already-built table holding the union's payload.
func WriteUnionSlot(ctx context.Context, b *Builder, tagFieldID, valueFieldID int, tag uint8, value fbtypes.UOffset) error {
	if tag == 0 {
		return nil
	}
	if err := b.Prep(ctx, 1, 0); err != nil {
		return err
	}
	if err := PlaceScalar(ctx, b, tag); err != nil {
		return err
	}
	if err := Slot(ctx, b, tagFieldID); err != nil {
		return err
	}
	return WriteOffsetSlot(ctx, b, valueFieldID, value)
}
