package stats

import "math"

// BlockEntropy partitions the grid into non-overlapping k x k blocks
// (remainder rows and columns are ignored), forms the empirical distribution
// over observed block bit patterns, and returns its Shannon entropy
// normalized by the theoretical maximum of k*k bits. A uniform grid yields
// exactly 0; results are always in [0, 1]. k must be at most 8 so a block
// fits in a 64-bit key.
func BlockEntropy(cells []uint8, w, h, k int) float64 {
	if k <= 0 || k > 8 {
		return 0
	}
	counts := map[uint64]int{}
	blocks := 0
	for by := 0; by+k <= h; by += k {
		for bx := 0; bx+k <= w; bx += k {
			var key uint64
			for dy := 0; dy < k; dy++ {
				row := (by + dy) * w
				for dx := 0; dx < k; dx++ {
					key <<= 1
					if cells[row+bx+dx] != 0 {
						key |= 1
					}
				}
			}
			counts[key]++
			blocks++
		}
	}
	if blocks == 0 {
		return 0
	}

	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(blocks)
		entropy -= p * math.Log2(p)
	}
	return entropy / float64(k*k)
}
