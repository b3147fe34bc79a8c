// Command rule-sweep explores the C4 rule space headlessly: it scores random
// rulesets by how interesting their runs look, refines the best one with
// mutations, and prints the top candidates as shareable hex codes.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"c4ca/internal/config"
	"c4ca/internal/engine"
	"c4ca/internal/orbit"
	"c4ca/internal/rule"
	"c4ca/internal/stats"

	"github.com/cheggaaa/pb/v3"
)

const mutationMagnitude = 0.05

type sweepResult struct {
	hex        string
	score      float64
	class      stats.Classification
	population float64
	entropy4   float64
	entities   int
}

func main() {
	var cfg config.Sweep
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatal(err)
	}
	flag.IntVar(&cfg.Rules, "rules", cfg.Rules, "random rulesets to score")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "steps to simulate per ruleset")
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid columns")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid rows")
	flag.IntVar(&cfg.Seed, "seed", cfg.Seed, "32-bit grid seed shared by all runs")
	flag.Float64Var(&cfg.AlivePct, "pct", cfg.AlivePct, "alive percentage for random seeding")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines (0 = NumCPU)")
	flag.IntVar(&cfg.Top, "top", cfg.Top, "results to print")
	flag.Parse()

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	idx := orbit.BuildIndex()

	candidates := make([]rule.C4Ruleset, 0, cfg.Rules)
	for i := 0; i < cfg.Rules; i++ {
		density := cfg.MinDensity
		if cfg.Rules > 1 {
			density += (cfg.MaxDensity - cfg.MinDensity) * float64(i) / float64(cfg.Rules-1)
		}
		candidates = append(candidates, rule.RandomByDensity(density))
	}

	fmt.Printf("Sweeping %d rulesets (%d workers, %d steps on %dx%d)\n",
		len(candidates), cfg.Workers, cfg.Steps, cfg.Width, cfg.Height)

	start := time.Now()
	results := runAll(candidates, cfg, idx)

	sort.Slice(results, func(i, j int) bool { return results[i].score > results[j].score })

	// Refine: mutate the best candidate and rescore the variants.
	if len(results) > 0 {
		best, err := rule.FromHex(results[0].hex)
		if err != nil {
			log.Fatal(err)
		}
		variants := make([]rule.C4Ruleset, 0, cfg.Rules/4)
		for i := 0; i < cfg.Rules/4; i++ {
			variants = append(variants, best.Mutate(mutationMagnitude))
		}
		if len(variants) > 0 {
			fmt.Printf("Refining best candidate with %d mutations\n", len(variants))
			results = append(results, runAll(variants, cfg, idx)...)
			sort.Slice(results, func(i, j int) bool { return results[i].score > results[j].score })
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("\nTop %d results (elapsed %s):\n", cfg.Top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < cfg.Top; i++ {
		r := results[i]
		fmt.Printf("%2d) score=%.3f %-15s pop=%.3f H4=%.3f entities=%d hex=%s\n",
			i+1, r.score, r.class, r.population, r.entropy4, r.entities, r.hex)
	}
}

// runAll fans the candidates out over a worker pool and collects one scored
// result each.
func runAll(candidates []rule.C4Ruleset, cfg config.Sweep, idx *orbit.Index) []sweepResult {
	jobs := make(chan rule.C4Ruleset)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c4 := range jobs {
				res, err := runCandidate(c4, cfg, idx)
				if err != nil {
					log.Fatal(err)
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, c4 := range candidates {
			jobs <- c4
		}
		close(jobs)
	}()

	bar := pb.StartNew(len(candidates))
	var all []sweepResult
	for res := range results {
		all = append(all, res)
		bar.Increment()
	}
	bar.Finish()
	return all
}

// runCandidate simulates one ruleset from the shared seed and scores it by
// the mean interest over the whole run.
func runCandidate(c4 rule.C4Ruleset, cfg config.Sweep, idx *orbit.Index) (sweepResult, error) {
	table := c4.Expand(idx)

	e, err := engine.NewCPU(cfg.Width, cfg.Height, int32(cfg.Seed))
	if err != nil {
		return sweepResult{}, err
	}
	defer e.Release()
	e.SeedRandom(cfg.AlivePct)

	tracker := stats.NewTracker(cfg.Width, cfg.Height)
	tracker.StartRun(stats.RunInfo{
		Name:           "sweep",
		Seed:           e.Seed(),
		SeedType:       e.SeedMethod(),
		SeedPercentage: e.SeedPercentage(),
		RulesetHex:     c4.Hex(),
	})

	var sum float64
	var last stats.StepStats
	for i := 0; i < cfg.Steps; i++ {
		e.Step(table)
		s, err := tracker.RecordStep(e.Cells())
		if err != nil {
			return sweepResult{}, err
		}
		sum += s.InterestScore
		last = s
	}

	score := 0.0
	if cfg.Steps > 0 {
		score = sum / float64(cfg.Steps)
	}
	return sweepResult{
		hex:        c4.Hex(),
		score:      score,
		class:      stats.Classify(last),
		population: last.Population,
		entropy4:   last.Entropy4,
		entities:   last.EntityCount,
	}, nil
}
