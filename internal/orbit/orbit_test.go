package orbit

import "testing"

func TestRot90Center(t *testing.T) {
	if Rot90(1<<4) != 1<<4 {
		t.Fatal("center bit must be fixed under rotation")
	}
	// Top-left corner moves to the top-right corner.
	if Rot90(1<<0) != 1<<2 {
		t.Fatalf("Rot90(bit 0) = %d, want bit 2", Rot90(1<<0))
	}
	// Four rotations are the identity.
	for p := 0; p < PatternCount; p++ {
		if Rot90(Rot90(Rot90(Rot90(p)))) != p {
			t.Fatalf("rotating pattern %d four times did not return it", p)
		}
	}
}

func TestBuildIndexOrbitCount(t *testing.T) {
	idx := BuildIndex()
	if len(idx.Orbits) != Count {
		t.Fatalf("got %d orbits, want %d", len(idx.Orbits), Count)
	}

	total := 0
	for _, o := range idx.Orbits {
		total += o.Size
		if o.Size != 4/o.Stabilizer {
			t.Fatalf("orbit %d: size %d does not equal 4/stabilizer (%d)", o.ID, o.Size, o.Stabilizer)
		}
		if o.Representative != Canonical(o.Representative) {
			t.Fatalf("orbit %d representative %d is not canonical", o.ID, o.Representative)
		}
	}
	if total != PatternCount {
		t.Fatalf("orbit sizes sum to %d, want %d", total, PatternCount)
	}
}

func TestOrbitIDRotationInvariant(t *testing.T) {
	idx := BuildIndex()
	for p := 0; p < PatternCount; p++ {
		id := idx.OrbitID[p]
		r := p
		for i := 0; i < 3; i++ {
			r = Rot90(r)
			if idx.OrbitID[r] != id {
				t.Fatalf("pattern %d and its rotation %d are in different orbits (%d vs %d)", p, r, id, idx.OrbitID[r])
			}
		}
		if idx.OrbitID[p] != idx.OrbitID[Canonical(p)] {
			t.Fatalf("pattern %d not in its canonical orbit", p)
		}
	}
}

func TestBuildIndexDeterministicAssignment(t *testing.T) {
	a := BuildIndex()
	b := BuildIndex()
	if a.OrbitID != b.OrbitID {
		t.Fatal("orbit id assignment is not deterministic")
	}
	// Ids ascend with canonical representatives.
	for i := 1; i < len(a.Orbits); i++ {
		if a.Orbits[i].Representative <= a.Orbits[i-1].Representative {
			t.Fatalf("orbit representatives not strictly ascending at id %d", i)
		}
	}
}

func TestNewIndexFromOrbits(t *testing.T) {
	built := BuildIndex()

	idx, err := NewIndexFromOrbits(built.Orbits)
	if err != nil {
		t.Fatalf("valid orbit table rejected: %v", err)
	}
	if idx.OrbitID != built.OrbitID {
		t.Fatal("injected table produced a different pattern mapping")
	}

	if _, err := NewIndexFromOrbits(built.Orbits[:139]); err == nil {
		t.Fatal("truncated orbit table must be rejected")
	}

	// Corrupt one membership: move a pattern into the wrong orbit.
	bad := make([]Orbit, len(built.Orbits))
	copy(bad, built.Orbits)
	bad[0].Members = append([]int(nil), bad[0].Members...)
	bad[0].Members[0] = bad[1].Members[0]
	if _, err := NewIndexFromOrbits(bad); err == nil {
		t.Fatal("orbit table with a foreign member must be rejected")
	}
}
