package setup

import (
	"fmt"

	"clocktower-lite/role"
)

const DefaultMaxAttempts = 100_000

// Config drives one Generator. It is read-only to the engine.
type Config struct {
	// Script is the role universe. Nil selects Trouble Brewing.
	Script *role.Script

	// Weights override the default 1.0 per-role draw weight. Every key
	// must belong to the script.
	Weights map[role.Role]float64

	// Constraints are evaluated in order with short-circuit on veto.
	Constraints []Constraint

	// Synergies and their temperature scale pairwise co-occurrence
	// terms. Temperature 0 disables them.
	Synergies          []Synergy
	SynergyTemperature float64

	// MaxAttempts bounds the proposal loop (0 => DefaultMaxAttempts).
	MaxAttempts int

	// RNG seed (0 => time-based)
	Seed int64

	// Adjust replaces the count-adjustment rule. Nil selects
	// ApplyMinionMods.
	Adjust AdjustFunc
}

func (c Config) validate(script *role.Script) error {
	if err := script.Validate(); err != nil {
		return ErrInvalidArgument(err.Error())
	}
	for r := range c.Weights {
		if !script.Contains(r) {
			return ErrInvalidArgument(fmt.Sprintf("unknown role in weights: %q", r))
		}
	}
	if c.MaxAttempts < 0 {
		return ErrInvalidArgument("MaxAttempts must be >= 0")
	}
	return nil
}
