package setup

import (
	"testing"

	"clocktower-lite/role"
)

func inPlay(roles ...role.Role) map[role.Role]bool {
	return toSet(roles)
}

func TestRequireAny(t *testing.T) {
	c := RequireAny{Roles: []role.Role{"Drunk", "Poisoner"}}

	if r := c.Evaluate(inPlay("Chef", "Poisoner"), Context{}); !r.Feasible || r.LogWeight != 0 {
		t.Fatalf("expected feasible with zero weight, got %+v", r)
	}
	if r := c.Evaluate(inPlay("Chef", "Imp"), Context{}); r.Feasible {
		t.Fatalf("expected veto when no role present, got %+v", r)
	}
}

func TestRequireAtLeastK(t *testing.T) {
	c := RequireAtLeastK{Roles: []role.Role{"Chef", "Empath", "Monk"}, K: 2}

	if r := c.Evaluate(inPlay("Chef", "Monk", "Imp"), Context{}); !r.Feasible {
		t.Fatalf("expected feasible with 2 of 3 present, got %+v", r)
	}
	if r := c.Evaluate(inPlay("Chef", "Imp"), Context{}); r.Feasible {
		t.Fatalf("expected veto with 1 of 3 present, got %+v", r)
	}
}

func TestForbidAll(t *testing.T) {
	c := ForbidAll{Roles: []role.Role{"Spy", "Poisoner"}}

	if r := c.Evaluate(inPlay("Spy", "Poisoner", "Imp"), Context{}); r.Feasible {
		t.Fatalf("expected veto when all present, got %+v", r)
	}
	if r := c.Evaluate(inPlay("Spy", "Imp"), Context{}); !r.Feasible || r.LogWeight != 0 {
		t.Fatalf("expected feasible when only some present, got %+v", r)
	}
}

func TestDiscourageAll(t *testing.T) {
	c := DiscourageAll{Roles: []role.Role{"Spy", "Poisoner"}, Penalty: 3}

	r := c.Evaluate(inPlay("Spy", "Poisoner"), Context{})
	if !r.Feasible {
		t.Fatalf("soft constraint must never veto, got %+v", r)
	}
	if r.LogWeight != -3 {
		t.Fatalf("expected log weight -3, got %v", r.LogWeight)
	}

	r = c.Evaluate(inPlay("Spy"), Context{})
	if !r.Feasible || r.LogWeight != 0 {
		t.Fatalf("expected neutral result, got %+v", r)
	}

	// Sign of the configured penalty must not matter.
	neg := DiscourageAll{Roles: []role.Role{"Spy"}, Penalty: -2}
	if r := neg.Evaluate(inPlay("Spy"), Context{}); r.LogWeight != -2 {
		t.Fatalf("expected -2 for negative-configured penalty, got %v", r.LogWeight)
	}
}

func TestEncourageAny(t *testing.T) {
	c := EncourageAny{Roles: []role.Role{"Drunk", "Poisoner"}, Bonus: 1.5}

	r := c.Evaluate(inPlay("Drunk", "Chef"), Context{})
	if !r.Feasible || r.LogWeight != 1.5 {
		t.Fatalf("expected +1.5 bonus, got %+v", r)
	}
	r = c.Evaluate(inPlay("Chef"), Context{})
	if !r.Feasible || r.LogWeight != 0 {
		t.Fatalf("expected neutral result, got %+v", r)
	}
}

func TestPreferBand(t *testing.T) {
	c := PreferBand{Roles: []role.Role{"Butler", "Saint", "Recluse"}, Low: 1, High: 2, Step: 1.5}

	cases := []struct {
		name string
		in   map[role.Role]bool
		want float64
	}{
		{"inside band", inPlay("Butler", "Chef"), 0},
		{"below band", inPlay("Chef", "Imp"), -1.5},
		{"above band", inPlay("Butler", "Saint", "Recluse"), -1.5},
	}
	for _, tc := range cases {
		r := c.Evaluate(tc.in, Context{})
		if !r.Feasible {
			t.Fatalf("%s: soft constraint must never veto", tc.name)
		}
		if r.LogWeight != tc.want {
			t.Fatalf("%s: expected log weight %v, got %v", tc.name, tc.want, r.LogWeight)
		}
	}

	// Two below the band costs two steps.
	wide := PreferBand{Roles: []role.Role{"Butler", "Saint", "Recluse"}, Low: 2, High: 3, Step: 1}
	if r := wide.Evaluate(inPlay("Chef"), Context{}); r.LogWeight != -2 {
		t.Fatalf("expected -2 two steps below band, got %v", r.LogWeight)
	}
}
