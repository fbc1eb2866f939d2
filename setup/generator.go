package setup

import (
	"math"
	"math/rand"
	"time"

	"clocktower-lite/role"
)

// Generator produces accepted setups by rejection sampling: propose a
// weighted draw, score it against the constraints, and accept with
// probability exp(score - runningMax). One Generator owns one RNG
// stream; concurrent callers must build their own.
type Generator struct {
	cfg    Config
	script *role.Script
	rng    *rand.Rand

	weights     map[role.Role]float64
	adjust      AdjustFunc
	maxAttempts int
}

// Outcome reports how one run ended alongside the accepted setup.
type Outcome struct {
	Setup    *Setup
	Score    float64
	Attempts int
	// AcceptedEarly is false when the run fell back to the best
	// feasible attempt after exhausting the budget.
	AcceptedEarly bool
}

// NewGenerator validates the config and builds the full weight map,
// defaulting every script role to 1.0.
func NewGenerator(cfg Config) (*Generator, error) {
	script := cfg.Script
	if script == nil {
		script = role.TroubleBrewing()
	}
	if err := cfg.validate(script); err != nil {
		return nil, err
	}

	weights := make(map[role.Role]float64, len(script.All()))
	for _, r := range script.All() {
		weights[r] = 1.0
	}
	for r, w := range cfg.Weights {
		weights[r] = w
	}

	adjust := cfg.Adjust
	if adjust == nil {
		adjust = ApplyMinionMods
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:         cfg,
		script:      script,
		rng:         rand.New(rand.NewSource(seed)),
		weights:     weights,
		adjust:      adjust,
		maxAttempts: maxAttempts,
	}, nil
}

// Generate runs one proposal loop and returns the accepted setup.
func (g *Generator) Generate(players int) (*Setup, error) {
	outcome, err := g.GenerateOutcome(players)
	if err != nil {
		return nil, err
	}
	return outcome.Setup, nil
}

// GenerateOutcome runs one proposal loop and reports how it ended.
func (g *Generator) GenerateOutcome(players int) (*Outcome, error) {
	base, err := BaseCounts(players)
	if err != nil {
		return nil, err
	}

	var best *Setup
	bestScore := math.Inf(-1)
	maxSeen := math.Inf(-1)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		// Minions first: the adjustment rule needs them before the
		// other categories are sized.
		minions, err := WeightedDraw(g.rng, g.script.Minions, base.Minion, g.weights)
		if err != nil {
			return nil, err
		}
		minionSet := toSet(minions)

		counts, err := g.adjust(base, minionSet)
		if err != nil {
			return nil, err
		}

		demons, err := WeightedDraw(g.rng, g.script.Demons, counts.Demon, g.weights)
		if err != nil {
			return nil, err
		}
		outsiders, err := WeightedDraw(g.rng, g.script.Outsiders, counts.Outsider, g.weights)
		if err != nil {
			return nil, err
		}
		townsfolk, err := WeightedDraw(g.rng, g.script.Townsfolk, counts.Townsfolk, g.weights)
		if err != nil {
			return nil, err
		}

		inPlay := toSet(townsfolk)
		for r := range minionSet {
			inPlay[r] = true
		}
		for _, r := range demons {
			inPlay[r] = true
		}
		for _, r := range outsiders {
			inPlay[r] = true
		}

		ctx := Context{Players: players, Counts: counts}
		feasible, logw := evaluateConstraints(inPlay, ctx, g.cfg.Constraints)
		if !feasible {
			continue
		}
		score := logw + synergyScore(inPlay, g.cfg.Synergies, g.cfg.SynergyTemperature)

		proposal := &Setup{
			Townsfolk: orderByList(g.script.Townsfolk, toSet(townsfolk)),
			Outsiders: orderByList(g.script.Outsiders, toSet(outsiders)),
			Minions:   orderByList(g.script.Minions, minionSet),
			Demons:    orderByList(g.script.Demons, toSet(demons)),
		}

		// Ties keep the earliest best.
		if best == nil || score > bestScore {
			best = proposal
			bestScore = score
		}
		if score > maxSeen {
			maxSeen = score
		}

		// exp(score - maxSeen) is in (0, 1] and hits 1 exactly when
		// this attempt matches or beats every prior score.
		if g.rng.Float64() <= math.Exp(score-maxSeen) {
			return &Outcome{
				Setup:         proposal,
				Score:         score,
				Attempts:      attempt,
				AcceptedEarly: true,
			}, nil
		}
	}

	if best == nil {
		return nil, ErrInfeasible
	}
	return &Outcome{
		Setup:    best,
		Score:    bestScore,
		Attempts: g.maxAttempts,
	}, nil
}

// Script returns the role universe this generator draws from.
func (g *Generator) Script() *role.Script { return g.script }
