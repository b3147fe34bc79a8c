// Package rule holds the compact and expanded rule representations for
// C4-symmetric binary automata, their hex wire format, and the built-in
// neighbor-count rules.
package rule

import (
	"math/bits"

	"c4ca/internal/orbit"
)

// C4Ruleset is the canonical compact rule: one binary output per rotation
// orbit, indexed by orbit id.
type C4Ruleset [orbit.Count]uint8

// Ruleset is the expanded 512-entry table the step engines consume, indexed
// by the 9-bit neighborhood pattern.
type Ruleset [orbit.PatternCount]uint8

// MakeC4 reduces a rule function over patterns to its compact form. Patterns
// are visited in ascending numeric order, so the last pattern in each orbit
// determines the stored value. fn must be rotation-invariant for the
// reduction to be faithful; neighbor-count rules satisfy this automatically.
func MakeC4(fn func(pattern int) uint8, idx *orbit.Index) C4Ruleset {
	var c4 C4Ruleset
	for p := 0; p < orbit.PatternCount; p++ {
		c4[idx.OrbitID[p]] = fn(p)
	}
	return c4
}

// Expand broadcasts the compact rule back over all 512 patterns. The result
// is rotationally symmetric by construction.
func (c C4Ruleset) Expand(idx *orbit.Index) Ruleset {
	var out Ruleset
	for p := 0; p < orbit.PatternCount; p++ {
		out[p] = c[idx.OrbitID[p]]
	}
	return out
}

// Alive reports the state of the center cell in a neighborhood pattern.
func Alive(pattern int) bool {
	return pattern>>4&1 == 1
}

// Neighbors counts the live cells around the center in a neighborhood pattern.
func Neighbors(pattern int) int {
	return bits.OnesCount16(uint16(pattern &^ (1 << 4)))
}

// Conway is the classic B3/S23 rule expressed over neighborhood patterns.
func Conway(pattern int) uint8 {
	n := Neighbors(pattern)
	if Alive(pattern) {
		if n == 2 || n == 3 {
			return 1
		}
		return 0
	}
	if n == 3 {
		return 1
	}
	return 0
}

// Outlier is the B36/S23 Life variant used as the showcase rule. Like Conway
// it depends only on neighbor counts, so it is rotation-invariant.
func Outlier(pattern int) uint8 {
	n := Neighbors(pattern)
	if Alive(pattern) {
		if n == 2 || n == 3 {
			return 1
		}
		return 0
	}
	if n == 3 || n == 6 {
		return 1
	}
	return 0
}
