package engine

import "c4ca/internal/core"

// CPU is the host-side step backend: a double-buffered table-lookup loop
// over the whole grid.
type CPU struct {
	simState
}

// NewCPU constructs a CPU engine with a center-seeded grid.
func NewCPU(w, h int, seed int32) (core.Engine, error) {
	e := &CPU{simState: newSimState(w, h, seed)}
	e.SeedCenter()
	return e, nil
}

// Name identifies the backend.
func (e *CPU) Name() string { return "cpu" }

// Step advances one generation. It writes into the scratch buffer while
// reading the current grid and then swaps, so the buffer being read is never
// mutated.
func (e *CPU) Step(table [512]uint8) {
	stepCells(e.grid.Cells(), e.nxt, e.grid.W, e.grid.H, table)
	e.nxt = e.grid.Swap(e.nxt)
	e.steps++
}

// Resize reallocates buffers at the new dimensions and replays the last
// seeding method. Callers must pause stepping first.
func (e *CPU) Resize(w, h int) {
	e.resize(w, h)
}

// Release is a no-op; the CPU backend owns no device resources.
func (e *CPU) Release() {}

func init() {
	core.Register("cpu", NewCPU)
}
