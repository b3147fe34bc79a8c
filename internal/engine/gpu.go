//go:build ebiten

package engine

import (
	"fmt"
	"image"

	"c4ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// stepShaderSrc is the per-cell kernel. It packs the 3x3 neighborhood into
// the same row-major 9-bit pattern as stepCells (center = bit 4) and looks
// the next state up in the Rule uniform. The grid images are unmanaged, so
// texel coordinates start at the origin and mod() implements the torus.
const stepShaderSrc = `//kage:unit pixels

package main

var Rule [512]float
var GridSize vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	idx := 0
	bit := 1
	for dy := -1.0; dy <= 1.0; dy += 1.0 {
		for dx := -1.0; dx <= 1.0; dx += 1.0 {
			pos := mod(srcPos+vec2(dx, dy), GridSize)
			if imageSrc0At(pos).r > 0.5 {
				idx += bit
			}
			bit *= 2
		}
	}
	v := Rule[idx]
	return vec4(v, v, v, 1)
}
`

// GPU is the device-side step backend. The grid is uploaded as a texture,
// one kernel invocation per cell computes the identical mapping as the CPU
// backend, and the result is read back before Step returns, so callers never
// observe a partial generation.
type GPU struct {
	simState
	shader *ebiten.Shader
	front  *ebiten.Image
	back   *ebiten.Image
	pix    []byte

	ruleUniform []float32
	lastTable   [512]uint8
	haveTable   bool
}

// NewGPU constructs a GPU engine with a center-seeded grid. It fails if the
// step shader cannot be compiled; backend fallback is the caller's concern.
func NewGPU(w, h int, seed int32) (core.Engine, error) {
	shader, err := ebiten.NewShader([]byte(stepShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compile step shader: %w", err)
	}
	e := &GPU{simState: newSimState(w, h, seed), shader: shader}
	e.allocImages()
	e.SeedCenter()
	return e, nil
}

// Name identifies the backend.
func (e *GPU) Name() string { return "gpu" }

func (e *GPU) allocImages() {
	size := e.Size()
	bounds := image.Rect(0, 0, size.W, size.H)
	opts := &ebiten.NewImageOptions{Unmanaged: true}
	e.front = ebiten.NewImageWithOptions(bounds, opts)
	e.back = ebiten.NewImageWithOptions(bounds, opts)
	e.pix = make([]byte, 4*size.W*size.H)
}

// Step advances one generation on the device and blocks until the result has
// been read back into the host grid.
func (e *GPU) Step(table [512]uint8) {
	if !e.haveTable || table != e.lastTable {
		e.lastTable = table
		e.haveTable = true
		if e.ruleUniform == nil {
			e.ruleUniform = make([]float32, len(table))
		}
		for i, v := range table {
			e.ruleUniform[i] = float32(v)
		}
	}

	size := e.Size()
	cells := e.grid.Cells()
	for i, c := range cells {
		v := byte(0)
		if c != 0 {
			v = 0xff
		}
		base := i * 4
		e.pix[base+0] = v
		e.pix[base+1] = v
		e.pix[base+2] = v
		e.pix[base+3] = 0xff
	}
	e.front.WritePixels(e.pix)

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = e.front
	op.Uniforms = map[string]any{
		"Rule":     e.ruleUniform,
		"GridSize": []float32{float32(size.W), float32(size.H)},
	}
	e.back.DrawRectShader(size.W, size.H, e.shader, op)

	// ReadPixels forces a host sync with the device queue.
	e.back.ReadPixels(e.pix)
	for i := range cells {
		cells[i] = 0
		if e.pix[i*4] > 0x7f {
			cells[i] = 1
		}
	}
	e.steps++
}

// Resize releases the device images, reallocates everything at the new
// dimensions, and replays the last seeding method. Callers must pause
// stepping first.
func (e *GPU) Resize(w, h int) {
	e.front.Dispose()
	e.back.Dispose()
	e.resize(w, h)
	e.allocImages()
}

// Release frees the device-side images. The engine must not be used after.
func (e *GPU) Release() {
	e.front.Dispose()
	e.back.Dispose()
	e.front = nil
	e.back = nil
}

func init() {
	core.Register("gpu", NewGPU)
}
