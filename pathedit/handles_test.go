package pathedit

import (
	"errors"
	"testing"

	"github.com/npillmayer/bezpath/curve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSlotMapping(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		slot, segCount int
		want           Slot
	}{
		{0, 1, Slot{0, curve.RoleStart}},
		{1, 1, Slot{0, curve.RoleEnd}},
		{0, 3, Slot{0, curve.RoleStart}},
		{1, 3, Slot{1, curve.RoleStart}},
		{2, 3, Slot{2, curve.RoleStart}},
		{3, 3, Slot{2, curve.RoleEnd}},
	}
	for _, c := range cases {
		got, err := SlotOf(c.slot, c.segCount)
		if err != nil {
			t.Fatalf("SlotOf(%d,%d) failed: %v", c.slot, c.segCount, err)
		}
		if got != c.want {
			t.Errorf("SlotOf(%d,%d) = %v, want %v", c.slot, c.segCount, got, c.want)
		}
	}
}

func TestSlotMappingRejectsStaleSlots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, c := range []struct{ slot, segCount int }{
		{-1, 2}, {4, 2}, {0, 0},
	} {
		if _, err := SlotOf(c.slot, c.segCount); !errors.Is(err, curve.ErrIndexOutOfRange) {
			t.Errorf("SlotOf(%d,%d): expected ErrIndexOutOfRange, got %v", c.slot, c.segCount, err)
		}
	}
}
