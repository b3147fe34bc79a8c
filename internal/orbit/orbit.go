// Package orbit classifies the 512 binary 3x3 neighborhood patterns into
// their equivalence classes under the four 90-degree rotations. The compact
// rule representation indexes rules by orbit instead of raw pattern, which
// shrinks 512 entries to 140.
package orbit

import "fmt"

// PatternCount is the number of 3x3 binary neighborhoods.
const PatternCount = 512

// Count is the number of rotation orbits over the 512 patterns: 70 orbits of
// the 8 outer bits times 2 states of the rotation-fixed center bit.
const Count = 140

// rotDest[i] is the bit position that bit i moves to under one clockwise
// rotation. Bits are row-major: bit 0 is the top-left cell, bit 4 the center.
var rotDest = [9]int{2, 5, 8, 1, 4, 7, 0, 3, 6}

// Rot90 rotates a neighborhood pattern by 90 degrees clockwise.
func Rot90(p int) int {
	q := 0
	for i := 0; i < 9; i++ {
		if p>>i&1 == 1 {
			q |= 1 << rotDest[i]
		}
	}
	return q
}

// Canonical returns the smallest pattern among the four rotations of p.
func Canonical(p int) int {
	min := p
	r := p
	for i := 0; i < 3; i++ {
		r = Rot90(r)
		if r < min {
			min = r
		}
	}
	return min
}

// Orbit describes one rotation equivalence class.
type Orbit struct {
	ID             int
	Representative int
	Stabilizer     int
	Size           int
	Members        []int
}

// Index maps every pattern to its orbit and lists the orbits themselves.
type Index struct {
	OrbitID [PatternCount]int
	Orbits  []Orbit
}

// BuildIndex computes the full orbit classification. Orbit ids are assigned
// in ascending order of canonical representative, so the assignment is
// identical across implementations.
func BuildIndex() *Index {
	idx := &Index{}
	byCanonical := map[int]int{}

	for p := 0; p < PatternCount; p++ {
		c := Canonical(p)
		if c == p {
			id := len(idx.Orbits)
			byCanonical[c] = id
			idx.Orbits = append(idx.Orbits, Orbit{
				ID:             id,
				Representative: p,
				Stabilizer:     stabilizer(p),
			})
		}
		id := byCanonical[c]
		idx.OrbitID[p] = id
		idx.Orbits[id].Members = append(idx.Orbits[id].Members, p)
	}

	for i := range idx.Orbits {
		idx.Orbits[i].Size = len(idx.Orbits[i].Members)
	}
	return idx
}

// NewIndexFromOrbits builds an Index from an externally supplied orbit table,
// validating that it covers all 512 patterns with 140 rotation-closed orbits.
func NewIndexFromOrbits(orbits []Orbit) (*Index, error) {
	if len(orbits) != Count {
		return nil, fmt.Errorf("orbit table has %d orbits, want %d", len(orbits), Count)
	}

	idx := &Index{Orbits: append([]Orbit(nil), orbits...)}
	seen := [PatternCount]bool{}
	for _, o := range idx.Orbits {
		if len(o.Members) == 0 {
			return nil, fmt.Errorf("orbit %d has no members", o.ID)
		}
		for _, p := range o.Members {
			if p < 0 || p >= PatternCount {
				return nil, fmt.Errorf("orbit %d contains out-of-range pattern %d", o.ID, p)
			}
			if seen[p] {
				return nil, fmt.Errorf("pattern %d appears in more than one orbit", p)
			}
			seen[p] = true
			if Canonical(p) != Canonical(o.Representative) {
				return nil, fmt.Errorf("pattern %d is not a rotation of orbit %d representative %d", p, o.ID, o.Representative)
			}
			idx.OrbitID[p] = o.ID
		}
	}
	for p := 0; p < PatternCount; p++ {
		if !seen[p] {
			return nil, fmt.Errorf("pattern %d is missing from the orbit table", p)
		}
	}
	return idx, nil
}

// stabilizer counts the rotations (including identity) that fix p.
func stabilizer(p int) int {
	n := 0
	r := p
	for i := 0; i < 4; i++ {
		if r == p {
			n++
		}
		r = Rot90(r)
	}
	return n
}
