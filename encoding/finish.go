package encoding

import (
	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/fbtypes"
)

// fileIdentifierSize is the fixed width of a FlatBuffers file
// identifier, placed immediately after the root uoffset.
const fileIdentifierSize = 4

// Finish closes the buffer, recording root as the root table/struct.
// After Finish, Bytes returns the complete, ready-to-transmit buffer
// and the Builder must be Reset before building another one.
func Finish(ctx context.Context, b *Builder, root fbtypes.UOffset) error {
	return finish(ctx, b, root, nil)
}

// FinishWithFileIdentifier is Finish, but also stamps a 4-byte file
// identifier right after the root uoffset, letting a reader sniff the
// buffer's schema before decoding it.
func FinishWithFileIdentifier(ctx context.Context, b *Builder, root fbtypes.UOffset, identifier [fileIdentifierSize]byte) error {
	id := identifier
	return finish(ctx, b, root, id[:])
}

func finish(ctx context.Context, b *Builder, root fbtypes.UOffset, identifier []byte) error {
	if err := b.checkNotFinished(ctx); err != nil {
		return err
	}
	if err := b.checkNotNested(ctx); err != nil {
		return err
	}

	extra := 0
	if identifier != nil {
		extra = len(identifier)
	}
	if err := b.Prep(ctx, b.minAlign, 4+extra); err != nil {
		return err
	}
	if identifier != nil {
		if err := b.placeBytes(ctx, identifier); err != nil {
			return err
		}
	}
	if _, err := writeUOffsetTo(ctx, b, root); err != nil {
		return err
	}
	b.finished = true
	return nil
}

// HasFileIdentifier reports whether buf carries identifier at the
// position FinishWithFileIdentifier would have placed it: immediately
// after the leading root uoffset.
func HasFileIdentifier(buf []byte, identifier [fileIdentifierSize]byte) bool {
	if len(buf) < 4+fileIdentifierSize {
		return false
	}
	return string(buf[4:4+fileIdentifierSize]) == string(identifier[:])
}
