package decoding_test

import (
	"testing"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/decoding"
	"github.com/bearlytools/flatcore/encoding"
)

func buildOneField(t *testing.T, write func(ctx context.Context, b *encoding.Builder) error) decoding.Table {
	t.Helper()
	ctx := context.Background()
	b := encoding.New()
	if err := encoding.StartObject(ctx, b, 1); err != nil {
		t.Fatalf("StartObject: %s", err)
	}
	if err := write(ctx, b); err != nil {
		t.Fatalf("write: %s", err)
	}
	tab, err := encoding.EndObject(ctx, b)
	if err != nil {
		t.Fatalf("EndObject: %s", err)
	}
	if err := encoding.Finish(ctx, b, tab); err != nil {
		t.Fatalf("Finish: %s", err)
	}
	root, err := decoding.RootTable(b.Bytes())
	if err != nil {
		t.Fatalf("RootTable: %s", err)
	}
	return root
}

func TestGetScalarDefaultWhenAbsent(t *testing.T) {
	root := buildOneField(t, func(ctx context.Context, b *encoding.Builder) error { return nil })
	got, err := decoding.GetScalar[int32](root, 0, -1)
	if err != nil {
		t.Fatalf("GetScalar: %s", err)
	}
	if got != -1 {
		t.Errorf("GetScalar() = %d, want the default -1", got)
	}
}

func TestGetScalarPresent(t *testing.T) {
	root := buildOneField(t, func(ctx context.Context, b *encoding.Builder) error {
		return encoding.WriteScalarSlot(ctx, b, 0, int32(555), 0)
	})
	got, err := decoding.GetScalar[int32](root, 0, -1)
	if err != nil {
		t.Fatalf("GetScalar: %s", err)
	}
	if got != 555 {
		t.Errorf("GetScalar() = %d, want 555", got)
	}
}

func TestRequiredScalarMissing(t *testing.T) {
	root := buildOneField(t, func(ctx context.Context, b *encoding.Builder) error { return nil })
	if _, err := decoding.RequiredScalar[int32](root, 0, "count"); err == nil {
		t.Error("RequiredScalar on an absent field: got nil error, want MissingField")
	} else if mf, ok := err.(*decoding.MissingField); !ok {
		t.Errorf("RequiredScalar error type = %T, want *decoding.MissingField", err)
	} else if mf.FieldName != "count" {
		t.Errorf("MissingField.FieldName = %q, want %q", mf.FieldName, "count")
	}
}

func TestRequiredScalarPresent(t *testing.T) {
	root := buildOneField(t, func(ctx context.Context, b *encoding.Builder) error {
		return encoding.WriteScalarSlot(ctx, b, 0, int32(9), 0)
	})
	got, err := decoding.RequiredScalar[int32](root, 0, "count")
	if err != nil {
		t.Fatalf("RequiredScalar: %s", err)
	}
	if got != 9 {
		t.Errorf("RequiredScalar() = %d, want 9", got)
	}
}

func TestRootTableBufferTooShort(t *testing.T) {
	if _, err := decoding.RootTable([]byte{0, 0, 0}); err == nil {
		t.Error("RootTable on a 3-byte buffer: got nil error, want one")
	}
}

func TestRootTableOffsetOutsideBuffer(t *testing.T) {
	buf := []byte{100, 0, 0, 0}
	if _, err := decoding.RootTable(buf); err == nil {
		t.Error("RootTable with an offset past the buffer end: got nil error, want one")
	}
}
