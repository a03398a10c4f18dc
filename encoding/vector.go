package encoding

import (
	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/fberrors"
	"github.com/bearlytools/flatcore/fbtypes"
)

// StartVector reserves room for a vector of numElems elements of the
// given elemSize/elemAlign. Inline-scalar vectors pass the scalar's own
// size and alignment; vectors of uoffsets (strings, tables,
// vectors-of-vectors) pass 4 and 4.
func StartVector(ctx context.Context, b *Builder, elemSize, elemAlign, numElems int) error {
	if err := b.checkNotFinished(ctx); err != nil {
		return err
	}
	if err := b.checkNotNested(ctx); err != nil {
		return err
	}
	// Two separate preparations, matching the two distinct alignment
	// requirements in play: the eventual u32 length prefix, and the
	// element array itself (which may need a wider alignment, e.g. 8
	// for a vector of double).
	if err := b.Prep(ctx, 4, elemSize*numElems); err != nil {
		return err
	}
	if err := b.Prep(ctx, elemAlign, elemSize*numElems); err != nil {
		return err
	}
	b.nested = true
	return nil
}

// EndVector writes the element count and returns the vector's position.
// Elements must already have been placed, highest index first, by the
// time this is called — the bottom-up mirror of writing them in
// ascending order on a forward-growing buffer.
func EndVector(ctx context.Context, b *Builder, numElems int) (fbtypes.UOffset, error) {
	if err := b.checkNested(ctx); err != nil {
		return 0, err
	}
	if err := PlaceScalar(ctx, b, uint32(numElems)); err != nil {
		return 0, err
	}
	b.nested = false
	return b.Offset(), nil
}

// PushElementOffset writes a single forward uoffset vector element
// pointing at target (a string, table, or nested vector already built).
// Elements must be pushed in descending index order, matching the
// bottom-up construction direction: a vector of references stores, per
// element, a uoffset relative to that element's own slot.
func PushElementOffset(ctx context.Context, b *Builder, target fbtypes.UOffset) error {
	if err := b.checkNested(ctx); err != nil {
		return fberrors.E(ctx, fberrors.CatUser, fberrors.TypeBug,
			fberrors.New("encoding: PushElementOffset called outside StartVector/EndVector"))
	}
	_, err := writeUOffsetTo(ctx, b, target)
	return err
}

// PushElementScalar writes a single inline scalar vector element. Like
// PushElementOffset, elements must be pushed in descending index order.
func PushElementScalar[T fbtypes.Scalar](ctx context.Context, b *Builder, v T) error {
	if err := b.checkNested(ctx); err != nil {
		return fberrors.E(ctx, fberrors.CatUser, fberrors.TypeBug,
			fberrors.New("encoding: PushElementScalar called outside StartVector/EndVector"))
	}
	return PlaceScalar(ctx, b, v)
}
