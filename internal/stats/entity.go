package stats

import (
	"sort"
	"strconv"
	"strings"
)

// Entity is one tracked connected-component lineage.
type Entity struct {
	ID       int
	Alive    bool
	BornStep int
	// DiedStep is -1 while the lineage is alive.
	DiedStep int
}

type component struct {
	cells []int
}

type entityTracker struct {
	w       int
	records []Entity
	// live maps lineage id to the cell indices it occupied last generation.
	live   map[int][]int
	shapes map[string]struct{}
}

type entityStepResult struct {
	count  int
	total  int
	unique int
	alive  int
	died   int
}

func newEntityTracker(w int) *entityTracker {
	return &entityTracker{
		w:      w,
		live:   map[int][]int{},
		shapes: map[string]struct{}{},
	}
}

// step labels the current generation's components and matches each live
// lineage to the unclaimed component with the greatest cell overlap.
// Lineages are processed in ascending id order and ties go to the lowest
// component id; a component claimed by one lineage is excluded from later
// ones. Unmatched lineages die, unclaimed components start new lineages.
func (et *entityTracker) step(cells []uint8, h, stepNo int) entityStepResult {
	comps := labelComponents(cells, et.w, h)

	compOf := make(map[int]int, len(cells)/4)
	for ci, comp := range comps {
		for _, idx := range comp.cells {
			compOf[idx] = ci
		}
	}

	ids := make([]int, 0, len(et.live))
	for id := range et.live {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	claimed := make([]bool, len(comps))
	newLive := make(map[int][]int, len(comps))
	died := 0
	for _, id := range ids {
		overlap := make([]int, len(comps))
		for _, idx := range et.live[id] {
			if ci, ok := compOf[idx]; ok {
				overlap[ci]++
			}
		}
		best := -1
		for ci := range comps {
			if claimed[ci] || overlap[ci] == 0 {
				continue
			}
			if best < 0 || overlap[ci] > overlap[best] {
				best = ci
			}
		}
		if best < 0 {
			et.records[id].Alive = false
			et.records[id].DiedStep = stepNo
			died++
			continue
		}
		claimed[best] = true
		newLive[id] = comps[best].cells
	}

	for ci, comp := range comps {
		et.shapes[shapeKey(comp.cells, et.w)] = struct{}{}
		if claimed[ci] {
			continue
		}
		id := len(et.records)
		et.records = append(et.records, Entity{ID: id, Alive: true, BornStep: stepNo, DiedStep: -1})
		newLive[id] = comp.cells
	}

	et.live = newLive
	return entityStepResult{
		count:  len(comps),
		total:  len(et.records),
		unique: len(et.shapes),
		alive:  len(newLive),
		died:   died,
	}
}

// labelComponents finds the 8-connected components of alive cells with an
// iterative flood fill. Components are ordered by their first cell in
// row-major scan order, which fixes component ids deterministically.
func labelComponents(cells []uint8, w, h int) []component {
	visited := make([]bool, len(cells))
	var comps []component
	var stack []int

	for start, c := range cells {
		if c == 0 || visited[start] {
			continue
		}
		var comp component
		visited[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp.cells = append(comp.cells, idx)
			x, y := idx%w, idx/w
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					nidx := ny*w + nx
					if cells[nidx] != 0 && !visited[nidx] {
						visited[nidx] = true
						stack = append(stack, nidx)
					}
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// shapeKey normalizes a component's cells by translation so congruent shapes
// anywhere on the grid share one key.
func shapeKey(cells []int, w int) string {
	minX, minY := cells[0]%w, cells[0]/w
	for _, idx := range cells[1:] {
		if x := idx % w; x < minX {
			minX = x
		}
		if y := idx / w; y < minY {
			minY = y
		}
	}
	offsets := make([]int, len(cells))
	for i, idx := range cells {
		offsets[i] = (idx/w-minY)<<16 | (idx%w - minX)
	}
	sort.Ints(offsets)

	var b strings.Builder
	for _, o := range offsets {
		b.WriteString(strconv.Itoa(o))
		b.WriteByte(',')
	}
	return b.String()
}
