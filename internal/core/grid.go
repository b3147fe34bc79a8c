package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Snapshot returns a copy of the current cell buffer.
func (g *ByteGrid) Snapshot() []uint8 {
	return append([]uint8(nil), g.data...)
}

// Swap exchanges the backing slice with buf and returns the previous one.
// Both slices must have length W*H. This is the double-buffer primitive: a
// step writes into its scratch buffer and swaps, so the buffer being read is
// never mutated mid-step.
func (g *ByteGrid) Swap(buf []uint8) []uint8 {
	old := g.data
	g.data = buf
	return old
}

// SetCells overwrites the grid from a flat buffer. The buffer length must
// match rows*cols exactly; mismatches are rejected rather than reshaped.
func (g *ByteGrid) SetCells(cells []uint8) error {
	if len(cells) != g.W*g.H {
		return fmt.Errorf("grid buffer length %d does not match %dx%d grid", len(cells), g.W, g.H)
	}
	copy(g.data, cells)
	return nil
}
