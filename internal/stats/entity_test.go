package stats

import (
	"slices"
	"testing"
)

func grid(w, h int, coords [][2]int) []uint8 {
	cells := make([]uint8, w*h)
	for _, c := range coords {
		cells[c[1]*w+c[0]] = 1
	}
	return cells
}

func TestEntityPersistsAcrossSteps(t *testing.T) {
	et := newEntityTracker(6)
	block := [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}

	r := et.step(grid(6, 6, block), 6, 1)
	if r.count != 1 || r.total != 1 || r.alive != 1 || r.died != 0 {
		t.Fatalf("first step: %+v", r)
	}

	r = et.step(grid(6, 6, block), 6, 2)
	if r.count != 1 || r.total != 1 || r.alive != 1 || r.died != 0 {
		t.Fatalf("second step must keep the lineage, got %+v", r)
	}
	if !et.records[0].Alive || et.records[0].BornStep != 1 || et.records[0].DiedStep != -1 {
		t.Fatalf("lineage record wrong: %+v", et.records[0])
	}
}

func TestEntityDiesWhenUnmatched(t *testing.T) {
	et := newEntityTracker(6)
	et.step(grid(6, 6, [][2]int{{1, 1}}), 6, 1)

	r := et.step(grid(6, 6, nil), 6, 2)
	if r.count != 0 || r.alive != 0 || r.died != 1 {
		t.Fatalf("empty grid must kill the lineage, got %+v", r)
	}
	if et.records[0].Alive || et.records[0].DiedStep != 2 {
		t.Fatalf("lineage not marked dead: %+v", et.records[0])
	}
	if r.total != 1 {
		t.Fatalf("total lineages ever seen = %d, want 1", r.total)
	}
}

func TestEntityMatchPrefersLargestOverlap(t *testing.T) {
	et := newEntityTracker(7)
	// One lineage spanning the full top row segment.
	et.step(grid(7, 3, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}), 3, 1)

	// It splits: a 1-cell fragment (component 0 in scan order) and a 2-cell
	// fragment. The lineage must follow the larger overlap even though that
	// component has the higher id.
	r := et.step(grid(7, 3, [][2]int{{0, 0}, {2, 0}, {3, 0}}), 3, 2)
	if r.count != 2 || r.total != 2 || r.died != 0 {
		t.Fatalf("split step: %+v", r)
	}
	if !slices.Contains(et.live[0], 2) || !slices.Contains(et.live[0], 3) {
		t.Fatalf("lineage 0 should own the 2-cell fragment, owns %v", et.live[0])
	}
	if !slices.Contains(et.live[1], 0) {
		t.Fatalf("the 1-cell fragment should start lineage 1, lineage 1 owns %v", et.live[1])
	}
}

func TestEntityMatchTieBreaksLowestComponentID(t *testing.T) {
	et := newEntityTracker(5)
	et.step(grid(5, 3, [][2]int{{1, 1}, {2, 1}, {3, 1}}), 3, 1)

	// Equal 1-cell overlap on both fragments: the lineage must take the
	// component with the lowest id, i.e. the first in row-major scan order.
	r := et.step(grid(5, 3, [][2]int{{1, 1}, {3, 1}}), 3, 2)
	if r.count != 2 || r.total != 2 {
		t.Fatalf("tie step: %+v", r)
	}
	if !slices.Equal(et.live[0], []int{1*5 + 1}) {
		t.Fatalf("lineage 0 should keep the left fragment, owns %v", et.live[0])
	}
	if !slices.Equal(et.live[1], []int{1*5 + 3}) {
		t.Fatalf("lineage 1 should be the right fragment, owns %v", et.live[1])
	}
}

func TestUniquePatternsTranslationNormalized(t *testing.T) {
	et := newEntityTracker(8)
	r := et.step(grid(8, 8, [][2]int{{1, 1}}), 8, 1)
	if r.unique != 1 {
		t.Fatalf("unique = %d, want 1", r.unique)
	}

	// Same shape elsewhere: still one distinct pattern.
	r = et.step(grid(8, 8, [][2]int{{5, 6}}), 8, 2)
	if r.unique != 1 {
		t.Fatalf("translated singleton must not add a pattern, unique = %d", r.unique)
	}

	// A new shape does.
	r = et.step(grid(8, 8, [][2]int{{2, 2}, {3, 2}, {2, 3}}), 8, 3)
	if r.unique != 2 {
		t.Fatalf("unique = %d, want 2", r.unique)
	}
}

func TestLabelComponentsDiagonalConnectivity(t *testing.T) {
	comps := labelComponents(grid(4, 4, [][2]int{{0, 0}, {1, 1}, {2, 2}}), 4, 4)
	if len(comps) != 1 {
		t.Fatalf("diagonal chain should be one 8-connected component, got %d", len(comps))
	}
	comps = labelComponents(grid(4, 4, [][2]int{{0, 0}, {2, 0}}), 4, 4)
	if len(comps) != 2 {
		t.Fatalf("cells two apart should be separate components, got %d", len(comps))
	}
}
