// Package stats scores each completed generation: population and activity,
// block entropy at three scales, connected-component lineage tracking, and
// the bounded interest heuristic consumed by the external leaderboard.
package stats

import (
	"fmt"
	"time"

	"c4ca/internal/core"
)

// StepStats is an immutable snapshot computed from one grid state.
type StepStats struct {
	Step             int
	Population       float64
	Activity         float64
	PopulationChange float64
	Entropy2         float64
	Entropy4         float64
	Entropy8         float64
	EntityCount      int
	EntityChange     int
	TotalEntities    int
	UniquePatterns   int
	EntitiesAlive    int
	EntitiesDied     int
	InterestScore    float64
}

// RunInfo describes the run being tracked; it is echoed into run records.
type RunInfo struct {
	Name           string
	Seed           int32
	SeedType       core.SeedMethod
	SeedPercentage float64
	RulesetHex     string
	RequestedSPS   float64
}

const historyLimit = 1024

// Tracker accumulates per-step statistics for one run. It is configured with
// fixed grid dimensions; recording a grid of any other size is a hard error.
type Tracker struct {
	w, h int

	prev    []uint8
	hasPrev bool
	prevPop float64

	entities    *entityTracker
	prevCount   int
	hasPrevCnt  bool
	history     []StepStats
	steps       int
	startedAt   time.Time
	info        RunInfo
}

// NewTracker creates a tracker for grids of the given dimensions.
func NewTracker(w, h int) *Tracker {
	return &Tracker{
		w:         w,
		h:         h,
		prev:      make([]uint8, w*h),
		entities:  newEntityTracker(w),
		startedAt: time.Now(),
	}
}

// StartRun resets the step counter, the wall clock, the history, and the
// stored run descriptors.
func (t *Tracker) StartRun(info RunInfo) {
	t.info = info
	t.steps = 0
	t.startedAt = time.Now()
	t.history = t.history[:0]
	t.hasPrev = false
	t.hasPrevCnt = false
	t.prevPop = 0
	t.entities = newEntityTracker(t.w)
}

// RecordStep scores the grid produced by one completed step and appends the
// snapshot to the bounded history.
func (t *Tracker) RecordStep(cells []uint8) (StepStats, error) {
	if len(cells) != t.w*t.h {
		return StepStats{}, fmt.Errorf("grid length %d does not match configured %dx%d", len(cells), t.w, t.h)
	}

	t.steps++
	s := StepStats{Step: t.steps}

	alive := 0
	changed := 0
	for i, c := range cells {
		if c != 0 {
			alive++
		}
		if t.hasPrev && c != t.prev[i] {
			changed++
		}
	}
	total := float64(len(cells))
	s.Population = float64(alive) / total
	if t.hasPrev {
		s.Activity = float64(changed) / total
		s.PopulationChange = s.Population - t.prevPop
	}

	s.Entropy2 = BlockEntropy(cells, t.w, t.h, 2)
	s.Entropy4 = BlockEntropy(cells, t.w, t.h, 4)
	s.Entropy8 = BlockEntropy(cells, t.w, t.h, 8)

	er := t.entities.step(cells, t.h, t.steps)
	s.EntityCount = er.count
	if t.hasPrevCnt {
		s.EntityChange = er.count - t.prevCount
	}
	s.TotalEntities = er.total
	s.UniquePatterns = er.unique
	s.EntitiesAlive = er.alive
	s.EntitiesDied = er.died

	s.InterestScore = interestScore(s.Population, s.Activity, s.Entropy4, s.EntityCount)

	copy(t.prev, cells)
	t.hasPrev = true
	t.prevPop = s.Population
	t.prevCount = er.count
	t.hasPrevCnt = true

	if len(t.history) >= historyLimit {
		t.history = t.history[1:]
	}
	t.history = append(t.history, s)
	return s, nil
}

// Recent returns the last n recorded snapshots, most recent first.
func (t *Tracker) Recent(n int) []StepStats {
	if n > len(t.history) {
		n = len(t.history)
	}
	out := make([]StepStats, 0, n)
	for i := len(t.history) - 1; i >= len(t.history)-n; i-- {
		out = append(out, t.history[i])
	}
	return out
}

// StepCount returns the number of steps recorded since StartRun.
func (t *Tracker) StepCount() int { return t.steps }

// ActualStepsPerSecond measures achieved throughput over the wall clock,
// as opposed to the requested rate playback may fail to sustain.
func (t *Tracker) ActualStepsPerSecond() float64 {
	elapsed := time.Since(t.startedAt).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(t.steps) / elapsed
}

// Entities returns every lineage ever created in this run, in id order.
func (t *Tracker) Entities() []Entity {
	return append([]Entity(nil), t.entities.records...)
}
