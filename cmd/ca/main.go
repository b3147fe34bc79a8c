//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"c4ca/internal/app"
	"c4ca/internal/core"
	_ "c4ca/internal/engine"
	"c4ca/internal/orbit"
	"c4ca/internal/rule"
	"c4ca/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Backend string
	W, H    int
	Scale   int
	TPS     int
	Seed    int
	Rule    string
	Hex     string
	Density float64
	Method  string
	Pct     float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Backend: "cpu", W: 128, H: 128, Scale: 4, TPS: 30, Seed: 42, Rule: "outlier", Density: 0.5, Method: "random", Pct: 50}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "step backend (cpu or gpu)")
	fs.IntVar(&c.W, "w", c.W, "grid columns")
	fs.IntVar(&c.H, "h", c.H, "grid rows")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.IntVar(&c.Seed, "seed", c.Seed, "32-bit grid seed")
	fs.StringVar(&c.Rule, "rule", c.Rule, "built-in rule (conway, outlier, random)")
	fs.StringVar(&c.Hex, "hex", c.Hex, "35-char ruleset hex (overrides -rule)")
	fs.Float64Var(&c.Density, "density", c.Density, "density for -rule random")
	fs.StringVar(&c.Method, "seeding", c.Method, "seeding method (center, random, patch)")
	fs.Float64Var(&c.Pct, "pct", c.Pct, "alive percentage for random/patch seeding")
}

func buildRuleset(cfg *Config, idx *orbit.Index) (rule.C4Ruleset, error) {
	if cfg.Hex != "" {
		return rule.FromHex(cfg.Hex)
	}
	switch cfg.Rule {
	case "conway":
		return rule.MakeC4(rule.Conway, idx), nil
	case "outlier":
		return rule.MakeC4(rule.Outlier, idx), nil
	case "random":
		return rule.RandomByDensity(cfg.Density), nil
	}
	return rule.C4Ruleset{}, errors.New("unknown rule " + cfg.Rule)
}

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Engines()[cfg.Backend]
	if !ok {
		log.Fatalf("unknown backend %q", cfg.Backend)
	}
	engine, err := factory(cfg.W, cfg.H, int32(cfg.Seed))
	if err != nil {
		log.Fatalf("create %s engine: %v", cfg.Backend, err)
	}
	defer engine.Release()

	idx := orbit.BuildIndex()
	c4, err := buildRuleset(cfg, idx)
	if err != nil {
		log.Fatal(err)
	}
	table := c4.Expand(idx)

	switch cfg.Method {
	case "center":
		engine.SeedCenter()
	case "random":
		engine.SeedRandom(cfg.Pct)
	case "patch":
		engine.SeedPatch(cfg.Pct)
	default:
		log.Fatalf("unknown seeding method %q", cfg.Method)
	}

	tracker := stats.NewTracker(cfg.W, cfg.H)
	tracker.StartRun(stats.RunInfo{
		Name:           "viewer",
		Seed:           engine.Seed(),
		SeedType:       engine.SeedMethod(),
		SeedPercentage: engine.SeedPercentage(),
		RulesetHex:     c4.Hex(),
		RequestedSPS:   float64(cfg.TPS),
	})

	game := app.New(engine, table, tracker, cfg.Scale, cfg.TPS)

	ebiten.SetWindowTitle("c4ca " + c4.Hex())
	ebiten.SetWindowSize(cfg.W*cfg.Scale, cfg.H*cfg.Scale+16)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
