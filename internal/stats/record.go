package stats

import (
	"fmt"
	"time"
)

// RunRecord is the flat object persisted by the external leaderboard
// service. The field names are re-derived and re-aggregated downstream and
// must not be renamed or reshaped.
type RunRecord struct {
	Population       float64 `json:"population"`
	Activity         float64 `json:"activity"`
	PopulationChange float64 `json:"population_change"`
	Entropy2         float64 `json:"entropy2x2"`
	Entropy4         float64 `json:"entropy4x4"`
	Entropy8         float64 `json:"entropy8x8"`
	EntityCount      int     `json:"entity_count"`
	EntityChange     int     `json:"entity_change"`
	TotalEntities    int     `json:"total_entities_ever_seen"`
	UniquePatterns   int     `json:"unique_patterns"`
	EntitiesAlive    int     `json:"entities_alive"`
	EntitiesDied     int     `json:"entities_died"`
	InterestScore    float64 `json:"interest_score"`
	Seed             int32   `json:"seed"`
	SeedType         string  `json:"seed_type"`
	SeedPercentage   float64 `json:"seed_percentage"`
	RulesetHex       string  `json:"ruleset_hex"`
	StepCount        int     `json:"step_count"`
	WatchedWallMS    int64   `json:"watched_wall_ms"`
	ActualSPS        float64 `json:"actual_sps"`
	RequestedSPS     float64 `json:"requested_sps"`
	GridSize         string  `json:"grid_size"`
}

// Record assembles the run record from the latest snapshot and the stored
// run descriptors.
func (t *Tracker) Record() RunRecord {
	var last StepStats
	if n := len(t.history); n > 0 {
		last = t.history[n-1]
	}
	return RunRecord{
		Population:       last.Population,
		Activity:         last.Activity,
		PopulationChange: last.PopulationChange,
		Entropy2:         last.Entropy2,
		Entropy4:         last.Entropy4,
		Entropy8:         last.Entropy8,
		EntityCount:      last.EntityCount,
		EntityChange:     last.EntityChange,
		TotalEntities:    last.TotalEntities,
		UniquePatterns:   last.UniquePatterns,
		EntitiesAlive:    last.EntitiesAlive,
		EntitiesDied:     last.EntitiesDied,
		InterestScore:    last.InterestScore,
		Seed:             t.info.Seed,
		SeedType:         string(t.info.SeedType),
		SeedPercentage:   t.info.SeedPercentage,
		RulesetHex:       t.info.RulesetHex,
		StepCount:        t.steps,
		WatchedWallMS:    time.Since(t.startedAt).Milliseconds(),
		ActualSPS:        t.ActualStepsPerSecond(),
		RequestedSPS:     t.info.RequestedSPS,
		GridSize:         fmt.Sprintf("%dx%d", t.w, t.h),
	}
}
