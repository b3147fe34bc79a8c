package rule

import (
	"math/rand/v2"

	"c4ca/internal/orbit"
)

// RandomByDensity draws a fresh compact rule with each orbit output set to 1
// independently with the given probability. This uses ambient randomness:
// rule discovery does not need to be replayable, only grids do.
func RandomByDensity(density float64) C4Ruleset {
	var c4 C4Ruleset
	for i := range c4 {
		if rand.Float64() < density {
			c4[i] = 1
		}
	}
	return c4
}

// Mutate returns a copy with each orbit output flipped independently with
// probability magnitude (clamped to [0,1]).
func (c C4Ruleset) Mutate(magnitude float64) C4Ruleset {
	if magnitude < 0 {
		magnitude = 0
	}
	if magnitude > 1 {
		magnitude = 1
	}
	out := c
	for i := 0; i < orbit.Count; i++ {
		if rand.Float64() < magnitude {
			out[i] ^= 1
		}
	}
	return out
}
