//go:build !ebiten

package engine

import (
	"errors"

	"c4ca/internal/core"
)

// NewGPU reports that no device backend was compiled in. Builds without the
// ebiten tag only register the CPU backend.
func NewGPU(w, h int, seed int32) (core.Engine, error) {
	return nil, errors.New("gpu backend not available: build with -tags ebiten")
}
