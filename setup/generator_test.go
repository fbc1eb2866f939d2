package setup

import (
	"errors"
	"reflect"
	"testing"

	"clocktower-lite/role"
)

func TestGenerator_Determinism(t *testing.T) {
	cfg := Config{
		Seed: 123,
		Constraints: []Constraint{
			DiscourageAll{Roles: []role.Role{role.Spy, role.Poisoner}, Penalty: 3},
			RequireAny{Roles: []role.Role{role.Drunk, role.Poisoner}},
		},
		Synergies:          []Synergy{{A: role.Spy, B: role.Poisoner, Score: -2}},
		SynergyTemperature: 1,
	}

	first := generateOnce(t, cfg, 10)
	second := generateOnce(t, cfg, 10)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different setups:\n%+v\n%+v", first, second)
	}
}

func TestGenerator_SevenPlayerCounts(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		s := generateOnce(t, Config{Seed: seed}, 7)

		baron := false
		for _, m := range s.Minions {
			if m == role.Baron {
				baron = true
			}
		}
		wantTF, wantOut := 5, 0
		if baron {
			wantTF, wantOut = 3, 2
		}
		if len(s.Townsfolk) != wantTF || len(s.Outsiders) != wantOut {
			t.Fatalf("seed %d: baron=%v expected %d/%d townsfolk/outsiders, got %d/%d",
				seed, baron, wantTF, wantOut, len(s.Townsfolk), len(s.Outsiders))
		}
		if len(s.Minions) != 1 || len(s.Demons) != 1 {
			t.Fatalf("seed %d: expected 1 minion and 1 demon, got %d/%d",
				seed, len(s.Minions), len(s.Demons))
		}
		assertCanonicalOrder(t, s)
	}
}

func TestGenerator_OutputFollowsCanonicalOrder(t *testing.T) {
	s := generateOnce(t, Config{Seed: 77}, 12)
	assertCanonicalOrder(t, s)
}

func TestGenerator_UnsatisfiableHardConstraintIsInfeasible(t *testing.T) {
	g, err := NewGenerator(Config{
		Seed:        5,
		MaxAttempts: 300,
		Constraints: []Constraint{
			RequireAny{Roles: []role.Role{"No Such Role"}},
		},
	})
	if err != nil {
		t.Fatalf("NewGenerator err: %v", err)
	}

	if _, err := g.Generate(8); !errors.Is(err, ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible, got %v", err)
	}
}

func TestGenerator_NoConstraintsAcceptsFirstAttempt(t *testing.T) {
	// With nothing to score, every attempt sits at the running max and
	// exp(0) = 1, so the very first feasible proposal is accepted.
	for seed := int64(1); seed <= 20; seed++ {
		g, err := NewGenerator(Config{Seed: seed})
		if err != nil {
			t.Fatalf("NewGenerator err: %v", err)
		}
		outcome, err := g.GenerateOutcome(9)
		if err != nil {
			t.Fatalf("GenerateOutcome err: %v", err)
		}
		if !outcome.AcceptedEarly || outcome.Attempts != 1 {
			t.Fatalf("seed %d: expected first-attempt acceptance, got %+v", seed, outcome)
		}
		if outcome.Score != 0 {
			t.Fatalf("seed %d: expected zero score, got %v", seed, outcome.Score)
		}
	}
}

func TestGenerator_RejectsUnknownWeightKey(t *testing.T) {
	var argErr InvalidArgumentError
	_, err := NewGenerator(Config{
		Weights: map[role.Role]float64{"Harlot": 2},
	})
	if !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}

func TestGenerator_RejectsUnsupportedPlayerCount(t *testing.T) {
	g, err := NewGenerator(Config{Seed: 1})
	if err != nil {
		t.Fatalf("NewGenerator err: %v", err)
	}
	var argErr InvalidArgumentError
	if _, err := g.Generate(99); !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}

func TestGenerator_WeightsSteerTheDraw(t *testing.T) {
	// Crushing every minion weight except the Baron's forces the Baron
	// into play, which must trigger the outsider trade.
	g, err := NewGenerator(Config{
		Seed: 11,
		Weights: map[role.Role]float64{
			role.Poisoner:     0,
			role.Spy:          0,
			role.ScarletWoman: 0,
		},
	})
	if err != nil {
		t.Fatalf("NewGenerator err: %v", err)
	}
	s, err := g.Generate(7)
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if len(s.Minions) != 1 || s.Minions[0] != role.Baron {
		t.Fatalf("expected the Baron, got %v", s.Minions)
	}
	if len(s.Townsfolk) != 3 || len(s.Outsiders) != 2 {
		t.Fatalf("expected 3/2 after the Baron trade, got %d/%d",
			len(s.Townsfolk), len(s.Outsiders))
	}
}

func TestGenerator_HardRequireIsHonored(t *testing.T) {
	cfg := Config{
		Seed: 31,
		Constraints: []Constraint{
			RequireAny{Roles: []role.Role{role.Drunk, role.Poisoner}},
		},
	}
	for seed := int64(31); seed < 41; seed++ {
		cfg.Seed = seed
		s := generateOnce(t, cfg, 10)
		found := false
		for _, r := range s.All() {
			if r == role.Drunk || r == role.Poisoner {
				found = true
			}
		}
		if !found {
			t.Fatalf("seed %d: accepted setup misses every required role: %+v", seed, s)
		}
	}
}

func generateOnce(t *testing.T, cfg Config, players int) *Setup {
	t.Helper()
	g, err := NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator err: %v", err)
	}
	s, err := g.Generate(players)
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	return s
}

func assertCanonicalOrder(t *testing.T, s *Setup) {
	t.Helper()
	script := role.TroubleBrewing()
	for _, cat := range role.Categories {
		list := script.List(cat)
		pos := -1
		for _, r := range s.List(cat) {
			idx := indexOf(list, r)
			if idx < 0 {
				t.Fatalf("%s role %q not in canonical list", cat, r)
			}
			if idx <= pos {
				t.Fatalf("%s roles out of canonical order: %v", cat, s.List(cat))
			}
			pos = idx
		}
	}
}

func indexOf(list []role.Role, r role.Role) int {
	for i, v := range list {
		if v == r {
			return i
		}
	}
	return -1
}
