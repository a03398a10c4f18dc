package encoding

import (
	"testing"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/decoding"
)

func TestNestedTableRoundTrips(t *testing.T) {
	ctx := context.Background()
	b := New()

	// The innermost table must be fully built before anything that
	// references it, since every forward reference points at an
	// already-written position.
	if err := StartObject(ctx, b, 1); err != nil {
		t.Fatalf("StartObject (inner): %s", err)
	}
	if err := WriteScalarSlot(ctx, b, 0, int32(7), 0); err != nil {
		t.Fatalf("WriteScalarSlot (inner): %s", err)
	}
	inner, err := EndObject(ctx, b)
	if err != nil {
		t.Fatalf("EndObject (inner): %s", err)
	}

	if err := StartObject(ctx, b, 2); err != nil {
		t.Fatalf("StartObject (middle): %s", err)
	}
	if err := WriteOffsetSlot(ctx, b, 0, inner); err != nil {
		t.Fatalf("WriteOffsetSlot (middle -> inner): %s", err)
	}
	if err := WriteScalarSlot(ctx, b, 1, int32(8), 0); err != nil {
		t.Fatalf("WriteScalarSlot (middle): %s", err)
	}
	middle, err := EndObject(ctx, b)
	if err != nil {
		t.Fatalf("EndObject (middle): %s", err)
	}

	if err := StartObject(ctx, b, 1); err != nil {
		t.Fatalf("StartObject (outer): %s", err)
	}
	if err := WriteOffsetSlot(ctx, b, 0, middle); err != nil {
		t.Fatalf("WriteOffsetSlot (outer -> middle): %s", err)
	}
	outer, err := EndObject(ctx, b)
	if err != nil {
		t.Fatalf("EndObject (outer): %s", err)
	}
	if err := Finish(ctx, b, outer); err != nil {
		t.Fatalf("Finish: %s", err)
	}

	root, err := decoding.RootTable(b.Bytes())
	if err != nil {
		t.Fatalf("RootTable: %s", err)
	}
	midTab, present, err := root.GetTable(0)
	if err != nil {
		t.Fatalf("GetTable (outer -> middle): %s", err)
	}
	if !present {
		t.Fatal("GetTable(0) on outer: field reported absent")
	}
	innerTab, present, err := midTab.GetTable(0)
	if err != nil {
		t.Fatalf("GetTable (middle -> inner): %s", err)
	}
	if !present {
		t.Fatal("GetTable(0) on middle: field reported absent")
	}

	gotMid, err := decoding.GetScalar[int32](midTab, 1, 0)
	if err != nil {
		t.Fatalf("GetScalar (middle): %s", err)
	}
	if gotMid != 8 {
		t.Errorf("middle field 1 = %d, want 8", gotMid)
	}
	gotInner, err := decoding.GetScalar[int32](innerTab, 0, 0)
	if err != nil {
		t.Fatalf("GetScalar (inner): %s", err)
	}
	if gotInner != 7 {
		t.Errorf("inner field 0 = %d, want 7", gotInner)
	}
}
