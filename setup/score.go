package setup

import (
	"math"

	"clocktower-lite/role"
)

// Synergy is a pairwise log-domain term applied when both roles are in
// play together. Negative scores discourage the pairing.
type Synergy struct {
	A     role.Role
	B     role.Role
	Score float64
}

// evaluateConstraints folds the constraint list in order,
// short-circuiting to (false, -Inf) on the first veto. Order never
// changes the final score; it only decides how much work a doomed
// candidate costs.
func evaluateConstraints(roles map[role.Role]bool, ctx Context, constraints []Constraint) (bool, float64) {
	logw := 0.0
	for _, c := range constraints {
		r := c.Evaluate(roles, ctx)
		if !r.Feasible {
			return false, math.Inf(-1)
		}
		logw += r.LogWeight
	}
	return true, logw
}

// synergyScore sums the triples whose both roles are in play, scaled
// by temperature. No triples or a zero temperature contribute exactly
// 0 without iterating.
func synergyScore(roles map[role.Role]bool, synergies []Synergy, temperature float64) float64 {
	if len(synergies) == 0 || temperature == 0 {
		return 0
	}
	s := 0.0
	for _, syn := range synergies {
		if roles[syn.A] && roles[syn.B] {
			s += syn.Score
		}
	}
	return s * temperature
}
