package core

import (
	"slices"
	"testing"
)

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(8, 6)

	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, 0, 7, 0},
		{8, 0, 0, 0},
		{0, -1, 0, 5},
		{3, 6, 3, 0},
		{-9, -7, 7, 5},
		{17, 13, 1, 1},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestByteGridSetCells(t *testing.T) {
	g := NewByteGrid(4, 4)
	buf := make([]uint8, 16)
	buf[5] = 1
	if err := g.SetCells(buf); err != nil {
		t.Fatalf("SetCells with matching length failed: %v", err)
	}
	if !slices.Equal(g.Cells(), buf) {
		t.Fatal("SetCells did not copy the buffer")
	}

	if err := g.SetCells(make([]uint8, 15)); err == nil {
		t.Fatal("SetCells must reject a size mismatch")
	}
	if err := g.SetCells(make([]uint8, 17)); err == nil {
		t.Fatal("SetCells must reject a size mismatch")
	}
}

func TestByteGridSnapshotIsCopy(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Cells()[4] = 1
	snap := g.Snapshot()
	g.Cells()[4] = 0
	if snap[4] != 1 {
		t.Fatal("Snapshot must not alias the live buffer")
	}
}
