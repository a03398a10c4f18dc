package encoding

import (
	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/fbtypes"
)

// CreateString writes s as a FlatBuffers string: a uoffset to a 4-byte
// length prefix followed by the UTF-8 bytes and a NUL terminator that
// is not counted in the length. The NUL lets a decoded string be handed
// to C-style APIs without copying.
func CreateString(ctx context.Context, b *Builder, s string) (fbtypes.UOffset, error) {
	return CreateByteString(ctx, b, []byte(s))
}

// CreateByteString is CreateString for raw bytes, used for both
// `string` fields already encoded as UTF-8 and for `[ubyte]`/`[byte]`
// vector fields, which share the same length-prefixed wire shape.
func CreateByteString(ctx context.Context, b *Builder, p []byte) (fbtypes.UOffset, error) {
	if err := b.checkNotFinished(ctx); err != nil {
		return 0, err
	}
	if err := b.checkNotNested(ctx); err != nil {
		return 0, err
	}

	if err := b.Prep(ctx, 4, len(p)+1); err != nil {
		return 0, err
	}
	if err := b.Pad(ctx, 1); err != nil { // NUL terminator, not counted in length
		return 0, err
	}
	if err := b.placeBytes(ctx, p); err != nil {
		return 0, err
	}
	if err := PlaceScalar(ctx, b, int32(len(p))); err != nil {
		return 0, err
	}
	return b.Offset(), nil
}
