//go:build ebiten

// Package app adapts an engine plus its statistics tracker to the
// ebiten.Game interface.
package app

import (
	"fmt"
	"image/color"
	"time"

	"c4ca/internal/core"
	"c4ca/internal/render"
	"c4ca/internal/rule"
	"c4ca/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudHeight = 16

// Game drives one engine with a playback scheduler and records statistics
// after every completed step.
type Game struct {
	engine  core.Engine
	table   rule.Ruleset
	tracker *stats.Tracker
	painter *render.GridPainter
	ticker  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	last     stats.StepStats
}

// New constructs a Game for the provided engine and expanded rule table.
func New(engine core.Engine, table rule.Ruleset, tracker *stats.Tracker, scale, tps int) *Game {
	size := engine.Size()
	return &Game{
		engine:   engine,
		table:    table,
		tracker:  tracker,
		painter:  render.NewGridPainter(size.W, size.H),
		ticker:   core.NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation on its tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.SoftReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.SetSeed(int32(time.Now().UnixNano()))
		g.engine.SoftReset()
	}

	shouldStep := g.ticker.ShouldStep()
	if (!g.paused && shouldStep) || g.tickOnce {
		g.engine.Step(g.table)
		g.tickOnce = false
		s, err := g.tracker.RecordStep(g.engine.Cells())
		if err != nil {
			return err
		}
		g.last = s
	}
	return nil
}

// Draw renders the grid and the stats line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Cells(), g.onColor, g.offColor, g.scale)

	size := g.engine.Size()
	line := fmt.Sprintf("gen %d  pop %.3f  act %.3f  H4 %.3f  %s  %.1f sps",
		g.engine.StepCount(), g.last.Population, g.last.Activity,
		g.last.Entropy4, stats.Classify(g.last), g.tracker.ActualStepsPerSecond())
	text.Draw(screen, line, basicfont.Face7x13, 4, size.H*g.scale+hudHeight-4, color.White)
}

// Layout returns the logical screen size including the stats line.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W * g.scale, s.H*g.scale + hudHeight
}
