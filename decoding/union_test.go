package decoding_test

import (
	"testing"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/flatcore/decoding"
	"github.com/bearlytools/flatcore/encoding"
)

func TestGetUnionStringPayload(t *testing.T) {
	ctx := context.Background()
	b := encoding.New()
	strOff, err := encoding.CreateString(ctx, b, "a string union member")
	if err != nil {
		t.Fatalf("CreateString: %s", err)
	}
	if err := encoding.StartObject(ctx, b, 2); err != nil {
		t.Fatalf("StartObject: %s", err)
	}
	if err := encoding.WriteScalarSlot(ctx, b, 0, uint8(2), 0); err != nil {
		t.Fatalf("WriteScalarSlot (tag): %s", err)
	}
	if err := encoding.WriteOffsetSlot(ctx, b, 1, strOff); err != nil {
		t.Fatalf("WriteOffsetSlot (value): %s", err)
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
	tag, err := root.GetUnionTag(0)
	if err != nil {
		t.Fatalf("GetUnionTag: %s", err)
	}
	if tag != 2 {
		t.Fatalf("GetUnionTag() = %d, want 2", tag)
	}
	got, present, err := root.GetUnionString(1)
	if err != nil {
		t.Fatalf("GetUnionString: %s", err)
	}
	if !present {
		t.Fatal("GetUnionString(1): value reported absent")
	}
	if got != "a string union member" {
		t.Errorf("GetUnionString() = %q, want %q", got, "a string union member")
	}
}

func TestUnionUnknownError(t *testing.T) {
	err := &decoding.UnionUnknown{Name: "Shape", Tag: 7}
	want := `decoding: "Shape" has no union member for tag 7`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
