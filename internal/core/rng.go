package core

import (
	"encoding/binary"
	"hash/fnv"
)

// RNG is a deterministic 32-bit generator (Mulberry32). The exact output
// sequence is part of the sharing contract: a seed embedded in a link must
// regenerate byte-identical initial grids on every implementation, so the
// recurrence below is fixed and must not be swapped for another source.
type RNG struct {
	state uint32
}

// NewRNG creates a generator seeded from a signed 32-bit seed.
func NewRNG(seed int32) *RNG {
	return &RNG{state: uint32(seed)}
}

// Reseed resets the generator state to the given seed.
func (r *RNG) Reseed(seed int32) {
	r.state = uint32(seed)
}

// Float64 advances the state and returns the next value in [0, 1).
func (r *RNG) Float64() float64 {
	r.state += 0x6d2b79f5
	t := (r.state ^ (r.state >> 15)) * (r.state | 1)
	t = (t + (t^(t>>7))*(t|61)) ^ t
	return float64(t^(t>>14)) / 4294967296.0
}

// ChainSeed maps a seed to its successor by hashing its four little-endian
// bytes with 32-bit FNV-1a. Repeated application yields the deterministic
// chain of "next" initial conditions used by soft resets.
func ChainSeed(seed int32) int32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(seed))
	h := fnv.New32a()
	h.Write(b[:])
	return int32(h.Sum32())
}
