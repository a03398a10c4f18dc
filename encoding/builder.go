package encoding

import (
	"math"

	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/values/sizes"

	"github.com/bearlytools/flatcore/fberrors"
	"github.com/bearlytools/flatcore/fbtypes"
	"github.com/bearlytools/flatcore/internal/binary"
)

// maxBufferSize is the largest buffer this encoder will produce: every
// offset must fit a signed 32-bit integer.
const maxBufferSize = math.MaxInt32

// Builder is the mutable bottom-up build state: a buffer filled from
// its end backward, tracking field slots and a vtable dedup cache.
// It is not safe for concurrent use by multiple goroutines; independent
// Builders may run in parallel without restriction.
type Builder struct {
	// buf holds the buffer under construction. Bytes accumulate from
	// the end: valid data lives in buf[head:], so the first byte ever
	// written ends up at the highest offset from the start once the
	// buffer stops growing.
	buf []byte
	// head is the index into buf where the next write lands. It only
	// ever decreases.
	head int

	// minAlign is the largest alignment requirement seen so far.
	minAlign int

	// vtable is scratch space for the table currently being built: one
	// slot position per field id, 0 meaning absent.
	vtable []fbtypes.UOffset
	// vtableInUse is cleared by Reset and not otherwise read;
	// StartObject reuses vtable's backing array whenever its capacity
	// suffices.
	vtableInUse int
	// objectEnd is the Offset() recorded when the current table's body
	// started being written (used to compute voffsets).
	objectEnd fbtypes.UOffset
	// nested guards against starting a new object/vector while one is
	// already open, and against writing scalars outside of one.
	nested bool
	// finished is set once Finish has produced a root; a Builder must
	// be Reset before building another buffer.
	finished bool

	// vtableCache maps serialized vtable bytes to the position (bytes
	// from the eventual buffer end, i.e. the Offset() value recorded
	// when that vtable was written) at which an identical vtable was
	// already written. This is the vtable dedup cache.
	vtableCache map[string]fbtypes.UOffset

	maxSize int
}

// Option configures a new Builder.
type Option func(*Builder)

// WithInitialSize preallocates n bytes of backing storage.
func WithInitialSize(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.buf = make([]byte, n)
			b.head = n
		}
	}
}

// WithMaxSize caps the buffer this Builder may produce. Exceeding it
// surfaces as an overflow error instead of growing forever. A value
// <= 0 leaves the default cap of 2^31-1 bytes in place.
func WithMaxSize(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxSize = n
		}
	}
}

// New creates a Builder ready to build one buffer.
func New(opts ...Option) *Builder {
	b := &Builder{
		buf:     make([]byte, 0, 1*sizes.KiB),
		maxSize: maxBufferSize,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Reset clears the Builder so it can build another buffer. The
// underlying storage is kept for reuse, matching the pooling idiom
// Claw's own Struct and Segment pools use; it is also what Pool calls
// on a Builder between Get and Put.
func (b *Builder) Reset() {
	if b.buf != nil {
		b.buf = b.buf[:cap(b.buf)]
	}
	b.head = len(b.buf)
	b.minAlign = 0
	b.vtable = b.vtable[:0]
	b.vtableInUse = 0
	b.objectEnd = 0
	b.nested = false
	b.finished = false
	b.vtableCache = nil
}

// Offset returns the number of bytes written so far, which doubles as
// the position from the eventual buffer end for whatever was just
// written.
func (b *Builder) Offset() fbtypes.UOffset {
	return fbtypes.UOffset(len(b.buf) - b.head)
}

// Bytes returns the valid portion of the finished (or in-progress)
// buffer. It is a view, not a copy.
func (b *Builder) Bytes() []byte {
	return b.buf[b.head:]
}

// grow doubles the backing array until it has room for needed more
// bytes (capped at maxSize), moving existing data to the new top so head-relative
// arithmetic keeps working.
func (b *Builder) grow(ctx context.Context, needed int) error {
	oldLen := len(b.buf)
	newLen := oldLen
	if newLen == 0 {
		newLen = 1
	}
	for newLen < oldLen+needed {
		newLen *= 2
	}
	if newLen > b.maxSize {
		if oldLen+needed > b.maxSize {
			return fberrors.E(ctx, fberrors.CatUser, fberrors.TypeOverflow,
				fberrors.New("encoding: buffer would exceed maximum size of "+itoa(b.maxSize)+" bytes"))
		}
		newLen = b.maxSize
	}
	nb := make([]byte, newLen)
	copy(nb[newLen-oldLen+b.head:], b.buf[b.head:])
	b.head = newLen - oldLen + b.head
	b.buf = nb
	return nil
}

// itoa avoids pulling in strconv just for one error message path; kept
// tiny, with a fixed-size digit buffer.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ensure makes sure at least n more bytes are available below head,
// growing the buffer if necessary.
func (b *Builder) ensure(ctx context.Context, n int) error {
	if b.head < n {
		return b.grow(ctx, n-b.head)
	}
	return nil
}

// Pad writes n zero bytes, used for both fixed struct padding and
// table/vtable alignment padding. Pre-padding never exceeds
// alignment-1 bytes.
func (b *Builder) Pad(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	if err := b.ensure(ctx, n); err != nil {
		return err
	}
	b.head -= n
	for i := 0; i < n; i++ {
		b.buf[b.head+i] = 0
	}
	return nil
}

// Prep prepares to write a scalar/struct of the given size, padding so
// that the write lands aligned to size, and reserving room for
// additionalBytes that will be written after it (e.g. a vtable's
// fields, or a struct nested inside another).
func (b *Builder) Prep(ctx context.Context, size, additionalBytes int) error {
	if size > b.minAlign {
		b.minAlign = size
	}

	// Bytes from the current head to the eventual (post-write, post-
	// additionalBytes) position modulo size tells us how much padding
	// is needed so the write itself lands aligned.
	alignSize := (^(len(b.buf) - b.head + additionalBytes) + 1) & (size - 1)

	total := alignSize + size + additionalBytes
	if err := b.ensure(ctx, total); err != nil {
		return err
	}
	return b.Pad(ctx, alignSize)
}

func (b *Builder) checkNotFinished(ctx context.Context) error {
	if b.finished {
		return fberrors.E(ctx, fberrors.CatUser, fberrors.TypeBug,
			fberrors.New("encoding: Builder already finished; call Reset before reuse"))
	}
	return nil
}

func (b *Builder) checkNotNested(ctx context.Context) error {
	if b.nested {
		return fberrors.E(ctx, fberrors.CatUser, fberrors.TypeBug,
			fberrors.New("encoding: cannot start a new object/vector while one is already open"))
	}
	return nil
}

func (b *Builder) checkNested(ctx context.Context) error {
	if !b.nested {
		return fberrors.E(ctx, fberrors.CatUser, fberrors.TypeBug,
			fberrors.New("encoding: writer called outside of an open object/vector"))
	}
	return nil
}

// placeBytes writes raw little-endian bytes directly, with no
// alignment handling of its own (callers must Prep first).
func (b *Builder) placeBytes(ctx context.Context, p []byte) error {
	if err := b.ensure(ctx, len(p)); err != nil {
		return err
	}
	b.head -= len(p)
	copy(b.buf[b.head:], p)
	return nil
}

// PlaceScalar appends a little-endian scalar at the current head
// without alignment handling (the buffer still grows if needed) — a thin wrapper over
// internal/binary.Put, specialized to the Scalar constraint used
// throughout this module.
func PlaceScalar[T fbtypes.Scalar](ctx context.Context, b *Builder, v T) error {
	buf := make([]byte, binary.Size(v))
	binary.Put(buf, v)
	return b.placeBytes(ctx, buf)
}

// WriteScalar aligns to sizeof(T), then places the value — the inline
// field writer used outside of any table (e.g. for a top-level scalar
// root, or a field not associated with a vtable slot).
func WriteScalar[T fbtypes.Scalar](ctx context.Context, b *Builder, v T) (fbtypes.UOffset, error) {
	if err := b.Prep(ctx, binary.Size(v), 0); err != nil {
		return 0, err
	}
	if err := PlaceScalar(ctx, b, v); err != nil {
		return 0, err
	}
	return b.Offset(), nil
}
