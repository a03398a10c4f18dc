package encoding

import (
	"testing"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/decoding"
	"github.com/bearlytools/flatcore/fbtypes"
)

func TestWriteScalarSlotElidesDefault(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		desc    string
		value   int32
		def     int32
		present bool
	}{
		{desc: "value equals default: elided", value: 0, def: 0, present: false},
		{desc: "value differs from zero default: written", value: 7, def: 0, present: true},
		{desc: "value equals a non-zero default: still elided", value: 5, def: 5, present: false},
		{desc: "value differs from a non-zero default: written", value: 9, def: 5, present: true},
	}

	for _, test := range tests {
		b := New()
		if err := StartObject(ctx, b, 1); err != nil {
			t.Fatalf("%s: StartObject: %s", test.desc, err)
		}
		if err := WriteScalarSlot(ctx, b, 0, test.value, test.def); err != nil {
			t.Fatalf("%s: WriteScalarSlot: %s", test.desc, err)
		}
		tab, err := EndObject(ctx, b)
		if err != nil {
			t.Fatalf("%s: EndObject: %s", test.desc, err)
		}
		if err := Finish(ctx, b, tab); err != nil {
			t.Fatalf("%s: Finish: %s", test.desc, err)
		}

		root, err := decoding.RootTable(b.Bytes())
		if err != nil {
			t.Fatalf("%s: RootTable: %s", test.desc, err)
		}
		present, err := root.HasField(0)
		if err != nil {
			t.Fatalf("%s: HasField: %s", test.desc, err)
		}
		if present != test.present {
			t.Errorf("%s: HasField(0) = %v, want %v", test.desc, present, test.present)
		}
		got, err := decoding.GetScalar[int32](root, 0, test.def)
		if err != nil {
			t.Fatalf("%s: GetScalar: %s", test.desc, err)
		}
		if got != test.value {
			t.Errorf("%s: GetScalar(0) = %d, want %d", test.desc, got, test.value)
		}
	}
}

func TestEndObjectDeduplicatesVtables(t *testing.T) {
	ctx := context.Background()
	b := New()

	buildPair := func(x, y int32) fbtypes.UOffset {
		if err := StartObject(ctx, b, 2); err != nil {
			t.Fatalf("StartObject: %s", err)
		}
		if err := WriteScalarSlot(ctx, b, 0, x, 0); err != nil {
			t.Fatalf("WriteScalarSlot(ctx, 0): %s", err)
		}
		if err := WriteScalarSlot(ctx, b, 1, y, 0); err != nil {
			t.Fatalf("WriteScalarSlot(ctx, 1): %s", err)
		}
		off, err := EndObject(ctx, b)
		if err != nil {
			t.Fatalf("EndObject: %s", err)
		}
		return off
	}

	buildPair(1, 2) // both fields present
	buildPair(3, 4) // both fields present, same shape: shares a vtable
	buildPair(5, 0) // second field absent: a distinct vtable shape

	if got, want := len(b.vtableCache), 2; got != want {
		t.Errorf("vtableCache has %d entries, want %d (one shared vtable plus one distinct)", got, want)
	}
}

func TestStartObjectFieldIDOutOfRange(t *testing.T) {
	ctx := context.Background()
	b := New()
	if err := StartObject(ctx, b, 2); err != nil {
		t.Fatalf("StartObject: %s", err)
	}
	if err := Slot(ctx, b, 2); err == nil {
		t.Error("Slot(ctx, 2) on a 2-field object: got nil error, want an out-of-range error")
	}
}
