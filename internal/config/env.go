// Package config loads tool configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Sweep configures the rule-sweep exploration tool. Flags may override any
// of these after parsing.
type Sweep struct {
	Rules      int     `env:"SWEEP_RULES" envDefault:"256"`
	Steps      int     `env:"SWEEP_STEPS" envDefault:"200"`
	Width      int     `env:"SWEEP_WIDTH" envDefault:"64"`
	Height     int     `env:"SWEEP_HEIGHT" envDefault:"64"`
	Seed       int     `env:"SWEEP_SEED" envDefault:"42"`
	AlivePct   float64 `env:"SWEEP_ALIVE_PCT" envDefault:"50"`
	MinDensity float64 `env:"SWEEP_MIN_DENSITY" envDefault:"0.2"`
	MaxDensity float64 `env:"SWEEP_MAX_DENSITY" envDefault:"0.8"`
	Workers    int     `env:"SWEEP_WORKERS" envDefault:"0"`
	Top        int     `env:"SWEEP_TOP" envDefault:"10"`
}
