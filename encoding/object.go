package encoding

import (
	"encoding/binary"
	"math"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/fberrors"
	"github.com/bearlytools/flatcore/fbtypes"
	fbbinary "github.com/bearlytools/flatcore/internal/binary"
)

// StartObject begins a table with numFields field slots. Every Slot
// call until the matching EndObject must name a field id in
// [0, numFields).
func StartObject(ctx context.Context, b *Builder, numFields int) error {
	if err := b.checkNotFinished(ctx); err != nil {
		return err
	}
	if err := b.checkNotNested(ctx); err != nil {
		return err
	}
	b.nested = true
	if cap(b.vtable) < numFields {
		b.vtable = make([]fbtypes.UOffset, numFields)
	} else {
		b.vtable = b.vtable[:numFields]
		for i := range b.vtable {
			b.vtable[i] = 0
		}
	}
	b.objectEnd = b.Offset()
	return nil
}

// Slot records that the value just written sits at the table's current
// field position for fieldID. It must be called immediately after
// writing that field's inline bytes (scalar, struct, or the uoffset of
// an out-of-line field).
func Slot(ctx context.Context, b *Builder, fieldID int) error {
	if err := b.checkNested(ctx); err != nil {
		return err
	}
	if fieldID < 0 || fieldID >= len(b.vtable) {
		return fberrors.E(ctx, fberrors.CatUser, fberrors.TypeOverflow,
			fberrors.New("encoding: field id out of range for this object"))
	}
	b.vtable[fieldID] = b.Offset()
	return nil
}

// EndObject closes the table, assembling and deduplicating its vtable,
// and returns the table's position.
func EndObject(ctx context.Context, b *Builder) (fbtypes.UOffset, error) {
	if err := b.checkNested(ctx); err != nil {
		return 0, err
	}

	// Trailing absent slots may be trimmed; they need not be, since a
	// zero voffset already marks a field absent.
	n := len(b.vtable)
	for n > 0 && b.vtable[n-1] == 0 {
		n--
	}
	slots := b.vtable[:n]

	// Pad to 4-byte alignment for the soffset.
	if err := b.Prep(ctx, 4, 0); err != nil {
		return 0, err
	}
	tableStart := b.Offset() + 4

	// Table size and voffsets, relative to tableStart.
	tableSize := tableStart - b.objectEnd
	if tableSize > math.MaxUint16 {
		return 0, fberrors.E(ctx, fberrors.CatUser, fberrors.TypeOverflow,
			fberrors.New("encoding: table body exceeds the 16-bit size a vtable can record"))
	}

	candidate := make([]byte, (len(slots)+2)*2)
	binary.LittleEndian.PutUint16(candidate[2:4], uint16(tableSize))
	for i, pos := range slots {
		var vo uint16
		if pos != 0 {
			d := tableStart - pos
			// A 16-bit overflow here is the caller's responsibility to
			// avoid; rather than truncate a voffset silently, fail
			// loudly instead.
			if d > math.MaxUint16 {
				return 0, fberrors.E(ctx, fberrors.CatUser, fberrors.TypeOverflow,
					fberrors.New("encoding: field offset exceeds 16 bits"))
			}
			vo = uint16(d)
		}
		binary.LittleEndian.PutUint16(candidate[4+i*2:6+i*2], vo)
	}
	binary.LittleEndian.PutUint16(candidate[0:2], uint16(len(candidate)))

	var soffsetValue int32
	hit := false
	var vtablePos fbtypes.UOffset
	if b.vtableCache != nil {
		if cached, ok := b.vtableCache[string(candidate)]; ok {
			vtablePos = cached
			hit = true
		}
	}

	if hit {
		soffsetValue = int32(vtablePos) - int32(tableStart)
	} else {
		soffsetValue = int32(len(candidate))
	}

	if err := PlaceScalar(ctx, b, soffsetValue); err != nil {
		return 0, err
	}

	if !hit {
		if err := b.placeBytes(ctx, candidate); err != nil {
			return 0, err
		}
		vtablePos = b.Offset()
		if b.vtableCache == nil {
			b.vtableCache = make(map[string]fbtypes.UOffset)
		}
		b.vtableCache[string(candidate)] = vtablePos
	}

	b.vtable = b.vtable[:0]
	b.nested = false
	return tableStart, nil
}

// WriteScalarSlot writes an inline scalar field, eliding it entirely
// when it equals def. A deprecated or absent-optional field should
// simply never call this.
func WriteScalarSlot[T fbtypes.Scalar](ctx context.Context, b *Builder, fieldID int, value, def T) error {
	if value == def {
		return nil
	}
	if err := b.Prep(ctx, fbbinary.Size(value), 0); err != nil {
		return err
	}
	if err := PlaceScalar(ctx, b, value); err != nil {
		return err
	}
	return Slot(ctx, b, fieldID)
}

// WriteStructSlot writes an inline struct field. Structs are always
// inline, even inside a table, and carry their own alignment. write
// must emit exactly size bytes (already built by a struct writer).
func WriteStructSlot(ctx context.Context, b *Builder, fieldID int, align, size int, write func(context.Context, *Builder) error) error {
	if err := b.Prep(ctx, align, 0); err != nil {
		return err
	}
	if err := write(ctx, b); err != nil {
		return err
	}
	return Slot(ctx, b, fieldID)
}

// WriteOffsetSlot records a uoffset field pointing at an already-
// written out-of-line object (string, table, or vector) whose position
// was returned from the writer that built it. The object must already
// exist in the buffer (built earlier in time, i.e. at a higher
// position) before this is called.
func WriteOffsetSlot(ctx context.Context, b *Builder, fieldID int, target fbtypes.UOffset) error {
	off, err := writeUOffsetTo(ctx, b, target)
	if err != nil {
		return err
	}
	_ = off
	return Slot(ctx, b, fieldID)
}

// writeUOffsetTo places a 4-byte forward uoffset pointing at target:
// the stored value is relative to the field's own location, so no
// further adjustment is needed once read back.
func writeUOffsetTo(ctx context.Context, b *Builder, target fbtypes.UOffset) (fbtypes.UOffset, error) {
	if err := b.Prep(ctx, 4, 0); err != nil {
		return 0, err
	}
	if target > b.Offset()+4 {
		return 0, fberrors.E(ctx, fberrors.CatInternal, fberrors.TypeBug,
			fberrors.New("encoding: bug: forward reference precedes its own target"))
	}
	rel := (b.Offset() + 4) - target
	if err := PlaceScalar(ctx, b, int32(rel)); err != nil {
		return 0, err
	}
	return b.Offset(), nil
}
