package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// SeedMethod identifies how an engine's grid was last initialized.
type SeedMethod string

const (
	// SeedCenter lights the single center cell.
	SeedCenter SeedMethod = "center"
	// SeedRandom fills the whole grid with Bernoulli draws.
	SeedRandom SeedMethod = "random"
	// SeedPatch fills a centered 10x10 window and smooths it once.
	SeedPatch SeedMethod = "patch"
)

// Engine is the contract a step backend must implement. One Step call runs to
// completion before another may begin; callers must pause stepping before
// Resize or Release.
type Engine interface {
	Name() string
	Size() Size

	// Step advances one generation using a 512-entry expanded rule table
	// indexed by the 9-bit neighborhood pattern (center cell = bit 4).
	Step(table [512]uint8)

	Resize(w, h int)
	Cells() []uint8
	SetCells(cells []uint8) error

	SeedCenter()
	SeedRandom(alivePercentage float64)
	SeedPatch(alivePercentage float64)
	SoftReset()

	SetSeed(seed int32)
	Seed() int32
	SeedMethod() SeedMethod
	SeedPercentage() float64
	StepCount() int

	// Release frees backend-owned resources. The engine must not be used
	// afterwards.
	Release()
}

// Factory constructs an Engine with the given dimensions and seed.
type Factory func(w, h int, seed int32) (Engine, error)

var engines = map[string]Factory{}

// Register adds an engine factory under the provided backend name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available step backends.
func Engines() map[string]Factory {
	return engines
}
