// Package engine provides the step backends that advance a binary toroidal
// grid by one generation using an expanded 512-entry rule table. The CPU and
// GPU backends share their grid, seeding, and reset state so that identical
// seeds always produce bit-identical runs on either.
package engine

import (
	"c4ca/internal/core"
)

const patchSize = 10

// simState is the mutable per-engine state shared by every backend: the grid
// and its scratch buffer, the seeded generator, and the last seeding request
// so soft resets and resizes can replay it.
type simState struct {
	grid   *core.ByteGrid
	nxt    []uint8
	rng    *core.RNG
	seed   int32
	method core.SeedMethod
	pct    float64
	steps  int
}

func newSimState(w, h int, seed int32) simState {
	g := core.NewByteGrid(w, h)
	return simState{
		grid:   g,
		nxt:    make([]uint8, len(g.Cells())),
		rng:    core.NewRNG(seed),
		seed:   seed,
		method: core.SeedCenter,
	}
}

// Size returns the grid dimensions.
func (s *simState) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the current generation buffer.
func (s *simState) Cells() []uint8 { return s.grid.Cells() }

// SetCells overwrites the grid from a flat buffer, rejecting size mismatches.
func (s *simState) SetCells(cells []uint8) error { return s.grid.SetCells(cells) }

// SetSeed stores a new seed for subsequent seeding calls.
func (s *simState) SetSeed(seed int32) {
	s.seed = seed
	s.rng.Reseed(seed)
}

// Seed returns the current seed.
func (s *simState) Seed() int32 { return s.seed }

// SeedMethod returns the last seeding method applied.
func (s *simState) SeedMethod() core.SeedMethod { return s.method }

// SeedPercentage returns the alive percentage of the last seeding call.
func (s *simState) SeedPercentage() float64 { return s.pct }

// StepCount returns the number of generations since the last seeding.
func (s *simState) StepCount() int { return s.steps }

// SeedCenter clears the grid and lights the single center cell.
func (s *simState) SeedCenter() {
	s.method = core.SeedCenter
	s.steps = 0
	s.grid.Clear()
	s.grid.Cells()[s.grid.Index(s.grid.W/2, s.grid.H/2)] = 1
}

// SeedRandom resets the generator from the stored seed and fills every cell
// with an independent Bernoulli draw at the given alive percentage.
func (s *simState) SeedRandom(alivePercentage float64) {
	s.method = core.SeedRandom
	s.pct = alivePercentage
	s.steps = 0
	s.rng.Reseed(s.seed)
	p := alivePercentage / 100
	cells := s.grid.Cells()
	for i := range cells {
		cells[i] = 0
		if s.rng.Float64() < p {
			cells[i] = 1
		}
	}
}

// SeedPatch clears the grid, fills a centered 10x10 window with Bernoulli
// draws at the given alive percentage, then applies one smoothing pass: a
// live cell survives with at least 2 live neighbors, and any cell with at
// least 4 becomes alive. Neighbor counts stay inside the grid bounds; the
// patch is not toroidal.
func (s *simState) SeedPatch(alivePercentage float64) {
	s.method = core.SeedPatch
	s.pct = alivePercentage
	s.steps = 0
	s.rng.Reseed(s.seed)
	s.grid.Clear()

	w, h := s.grid.W, s.grid.H
	p := alivePercentage / 100
	startX := w/2 - patchSize/2
	startY := h/2 - patchSize/2
	cells := s.grid.Cells()
	for py := 0; py < patchSize; py++ {
		y := startY + py
		for px := 0; px < patchSize; px++ {
			x := startX + px
			if x < 0 || x >= w || y < 0 || y >= h {
				continue
			}
			if s.rng.Float64() < p {
				cells[y*w+x] = 1
			}
		}
	}
	s.smooth()
}

// smooth writes one bounded 8-neighbor smoothing pass back into the grid.
func (s *simState) smooth() {
	w, h := s.grid.W, s.grid.H
	cells := s.grid.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					n += int(cells[ny*w+nx])
				}
			}
			idx := y*w + x
			s.nxt[idx] = 0
			if (cells[idx] == 1 && n >= 2) || n >= 4 {
				s.nxt[idx] = 1
			}
		}
	}
	copy(cells, s.nxt)
}

// SoftReset advances the seed along its hash chain and replays the last
// seeding method, yielding the deterministic "next" initial condition.
func (s *simState) SoftReset() {
	s.seed = core.ChainSeed(s.seed)
	s.rng.Reseed(s.seed)
	s.reseed()
}

// reseed re-runs the last seeding method with its last alive percentage.
func (s *simState) reseed() {
	switch s.method {
	case core.SeedRandom:
		s.SeedRandom(s.pct)
	case core.SeedPatch:
		s.SeedPatch(s.pct)
	default:
		s.SeedCenter()
	}
}

// resize reallocates the grid and scratch buffer at the new dimensions and
// replays the last seeding method. Simulation state does not survive this.
func (s *simState) resize(w, h int) {
	s.grid = core.NewByteGrid(w, h)
	s.nxt = make([]uint8, len(s.grid.Cells()))
	s.steps = 0
	s.reseed()
}

// stepCells computes one generation from src into dst. The neighborhood is
// packed row-major into a 9-bit pattern with the center cell at bit 4, the
// same convention the orbit index is built with; both axes wrap.
func stepCells(src, dst []uint8, w, h int, table [512]uint8) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pattern := 0
			bit := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if src[ny*w+nx] != 0 {
						pattern |= 1 << bit
					}
					bit++
				}
			}
			dst[y*w+x] = table[pattern]
		}
	}
}
