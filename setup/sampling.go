package setup

import (
	"fmt"
	"math/rand"

	"clocktower-lite/role"
)

// WeightedDraw samples k distinct roles from items without
// replacement. Each step draws proportionally to the current weights
// of the still-available pool, then removes the pick and renormalizes.
// Missing weights default to 1.0, negative weights clamp to 0.
//
// The step-by-step renormalization is deliberate: it is statistically
// distinguishable from a single joint draw, and callers depend on it.
func WeightedDraw(rng *rand.Rand, items []role.Role, k int, weights map[role.Role]float64) ([]role.Role, error) {
	if k < 0 {
		return nil, ErrInvalidArgument("k must be >= 0")
	}
	if k > len(items) {
		return nil, ErrInvalidArgument(fmt.Sprintf("k=%d exceeds available items (%d)", k, len(items)))
	}

	available := append([]role.Role{}, items...)
	chosen := make([]role.Role, 0, k)

	for len(chosen) < k {
		ws := make([]float64, len(available))
		total := 0.0
		for i, it := range available {
			w := 1.0
			if override, ok := weights[it]; ok {
				w = override
			}
			if w < 0 {
				w = 0
			}
			ws[i] = w
			total += w
		}
		if total <= 0 {
			return nil, ErrInvalidState("all remaining weights are zero; cannot sample")
		}

		r := rng.Float64() * total
		acc := 0.0
		idx := 0
		for i, w := range ws {
			acc += w
			if r <= acc {
				idx = i
				break
			}
		}

		chosen = append(chosen, available[idx])
		available = append(available[:idx], available[idx+1:]...)
	}

	return chosen, nil
}
