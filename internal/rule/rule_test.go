package rule

import (
	"math/rand/v2"
	"strings"
	"testing"

	"c4ca/internal/orbit"
)

func TestMakeC4ExpandRoundTrip(t *testing.T) {
	idx := orbit.BuildIndex()
	c4 := MakeC4(Conway, idx)
	table := c4.Expand(idx)

	for p := 0; p < orbit.PatternCount; p++ {
		if table[p] != Conway(p) {
			t.Fatalf("expanded table disagrees with Conway at pattern %d", p)
		}
	}
}

func TestExpandRotationInvariant(t *testing.T) {
	idx := orbit.BuildIndex()
	var c4 C4Ruleset
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range c4 {
		c4[i] = uint8(rng.IntN(2))
	}
	table := c4.Expand(idx)

	for p := 0; p < orbit.PatternCount; p++ {
		r := orbit.Rot90(p)
		if table[p] != table[r] {
			t.Fatalf("expanded table not rotation invariant: pattern %d vs %d", p, r)
		}
	}
}

func TestBuiltinRulesRotationInvariant(t *testing.T) {
	for name, fn := range map[string]func(int) uint8{"conway": Conway, "outlier": Outlier} {
		for p := 0; p < orbit.PatternCount; p++ {
			if fn(p) != fn(orbit.Rot90(p)) {
				t.Fatalf("%s rule output differs across a rotation at pattern %d", name, p)
			}
		}
	}
}

// The compact Conway encoding is a fixed artifact of the deterministic orbit
// id assignment; pin it so codec and index changes cannot drift silently.
func TestConwayGoldenHex(t *testing.T) {
	idx := orbit.BuildIndex()
	const want = "000000000000001800c5c585dc599ff0d40"
	if got := MakeC4(Conway, idx).Hex(); got != want {
		t.Fatalf("Conway hex = %q, want %q", got, want)
	}
	const wantOutlier = "044038080200001c00c5c585dc599ff0d40"
	if got := MakeC4(Outlier, idx).Hex(); got != wantOutlier {
		t.Fatalf("Outlier hex = %q, want %q", got, wantOutlier)
	}
}

func TestHexRoundTrip(t *testing.T) {
	var zero, ones C4Ruleset
	for i := range ones {
		ones[i] = 1
	}
	rng := rand.New(rand.NewPCG(3, 4))
	rulesets := []C4Ruleset{zero, ones}
	for i := 0; i < 20; i++ {
		var c4 C4Ruleset
		for j := range c4 {
			c4[j] = uint8(rng.IntN(2))
		}
		rulesets = append(rulesets, c4)
	}

	for _, c4 := range rulesets {
		h := c4.Hex()
		if len(h) != HexLength {
			t.Fatalf("hex length %d, want %d", len(h), HexLength)
		}
		if h != strings.ToLower(h) {
			t.Fatalf("hex %q is not lowercase", h)
		}
		back, err := FromHex(h)
		if err != nil {
			t.Fatalf("decode %q: %v", h, err)
		}
		if back != c4 {
			t.Fatalf("round trip mismatch for %q", h)
		}
	}
}

func TestFromHexRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"abc",
		strings.Repeat("0", 34),
		strings.Repeat("0", 36),
		strings.Repeat("0", 34) + "g",
		strings.Repeat("0", 34) + "A",
	}
	for _, s := range cases {
		if _, err := FromHex(s); err == nil {
			t.Fatalf("FromHex(%q) must fail", s)
		}
	}
}

func TestRandomByDensityExtremes(t *testing.T) {
	if RandomByDensity(0) != (C4Ruleset{}) {
		t.Fatal("density 0 must produce the empty rule")
	}
	all := RandomByDensity(1)
	for i, v := range all {
		if v != 1 {
			t.Fatalf("density 1 left orbit %d at 0", i)
		}
	}
}

func TestMutate(t *testing.T) {
	base := RandomByDensity(0.5)
	if base.Mutate(0) != base {
		t.Fatal("magnitude 0 must not flip anything")
	}
	flipped := base.Mutate(1)
	for i := range base {
		if flipped[i] == base[i] {
			t.Fatalf("magnitude 1 must flip every orbit, %d unchanged", i)
		}
	}
}
