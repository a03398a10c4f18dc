package encoding

import (
	"testing"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/decoding"
)

func TestFinishProducesRootOffsetAtByteZero(t *testing.T) {
	ctx := context.Background()
	b := New()
	if err := StartObject(ctx, b, 1); err != nil {
		t.Fatalf("StartObject: %s", err)
	}
	if err := WriteScalarSlot(ctx, b, 0, int32(99), 0); err != nil {
		t.Fatalf("WriteScalarSlot: %s", err)
	}
	tab, err := EndObject(ctx, b)
	if err != nil {
		t.Fatalf("EndObject: %s", err)
	}
	if err := Finish(ctx, b, tab); err != nil {
		t.Fatalf("Finish: %s", err)
	}

	root, err := decoding.RootTable(b.Bytes())
	if err != nil {
		t.Fatalf("RootTable: %s", err)
	}
	got, err := decoding.GetScalar[int32](root, 0, 0)
	if err != nil {
		t.Fatalf("GetScalar: %s", err)
	}
	if got != 99 {
		t.Errorf("GetScalar(0) = %d, want 99", got)
	}
}

func TestFinishTwiceFails(t *testing.T) {
	ctx := context.Background()
	b := New()
	if err := StartObject(ctx, b, 0); err != nil {
		t.Fatalf("StartObject: %s", err)
	}
	tab, err := EndObject(ctx, b)
	if err != nil {
		t.Fatalf("EndObject: %s", err)
	}
	if err := Finish(ctx, b, tab); err != nil {
		t.Fatalf("Finish: %s", err)
	}
	if err := Finish(ctx, b, tab); err == nil {
		t.Error("second Finish on an already-finished Builder: got nil error, want one")
	}
}

func TestFinishWithFileIdentifierRoundTrips(t *testing.T) {
	ctx := context.Background()
	id := [4]byte{'C', 'L', 'A', 'W'}

	b := New()
	if err := StartObject(ctx, b, 0); err != nil {
		t.Fatalf("StartObject: %s", err)
	}
	tab, err := EndObject(ctx, b)
	if err != nil {
		t.Fatalf("EndObject: %s", err)
	}
	if err := FinishWithFileIdentifier(ctx, b, tab, id); err != nil {
		t.Fatalf("FinishWithFileIdentifier: %s", err)
	}

	buf := b.Bytes()
	if !decoding.HasIdentifier(buf, id) {
		t.Error("HasIdentifier: got false, want true after FinishWithFileIdentifier")
	}
	if !HasFileIdentifier(buf, id) {
		t.Error("HasFileIdentifier: got false, want true after FinishWithFileIdentifier")
	}

	other := [4]byte{'N', 'O', 'P', 'E'}
	if decoding.HasIdentifier(buf, other) {
		t.Error("HasIdentifier with a mismatched identifier: got true, want false")
	}

	if _, err := decoding.RootTableWithIdentifier(buf, id); err != nil {
		t.Errorf("RootTableWithIdentifier with the matching identifier: %s", err)
	}
	if _, err := decoding.RootTableWithIdentifier(buf, other); err == nil {
		t.Error("RootTableWithIdentifier with a mismatched identifier: got nil error, want one")
	}
}

func TestFinishWithoutFileIdentifierHasNone(t *testing.T) {
	ctx := context.Background()
	id := [4]byte{'C', 'L', 'A', 'W'}

	b := New()
	if err := StartObject(ctx, b, 0); err != nil {
		t.Fatalf("StartObject: %s", err)
	}
	tab, err := EndObject(ctx, b)
	if err != nil {
		t.Fatalf("EndObject: %s", err)
	}
	if err := Finish(ctx, b, tab); err != nil {
		t.Fatalf("Finish: %s", err)
	}

	if HasFileIdentifier(b.Bytes(), id) {
		t.Error("HasFileIdentifier on a buffer finished without one: got true, want false")
	}
}
