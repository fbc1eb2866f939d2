package codec

import (
	"testing"

	"clocktower-lite/role"
	"clocktower-lite/setup"
)

func TestBuildConfigDefaults(t *testing.T) {
	registry := role.NewRegistry()
	cfg, err := BuildConfig(&GenerateRequest{Players: 7}, registry)
	if err != nil {
		t.Fatalf("BuildConfig err: %v", err)
	}
	if cfg.Script != nil {
		t.Fatalf("expected nil script (engine default), got %v", cfg.Script.Name)
	}
	if cfg.SynergyTemperature != 1 {
		t.Fatalf("expected default temperature 1, got %v", cfg.SynergyTemperature)
	}

	g, err := setup.NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator err: %v", err)
	}
	if g.Script().Name != "Trouble Brewing" {
		t.Fatalf("expected Trouble Brewing default, got %q", g.Script().Name)
	}
}

func TestBuildConfigRejectsUnknownScript(t *testing.T) {
	registry := role.NewRegistry()
	if _, err := BuildConfig(&GenerateRequest{Script: "No Such Script", Players: 7}, registry); err == nil {
		t.Fatalf("expected unknown script error")
	}
}

func TestBuildConfigTranslatesConstraintsAndSynergies(t *testing.T) {
	registry := role.NewRegistry()
	temp := 0.5
	req := &GenerateRequest{
		Players: 10,
		Weights: map[string]float64{"Baron": 1.5},
		Constraints: []setup.ConstraintSpec{
			{Kind: setup.KindRequireAny, Roles: []role.Role{role.Drunk, role.Poisoner}},
		},
		Synergies:          []SynergyEntry{{A: "Spy", B: "Poisoner", Score: -2}},
		SynergyTemperature: &temp,
	}

	cfg, err := BuildConfig(req, registry)
	if err != nil {
		t.Fatalf("BuildConfig err: %v", err)
	}
	if len(cfg.Constraints) != 1 || len(cfg.Synergies) != 1 {
		t.Fatalf("expected 1 constraint and 1 synergy, got %d/%d",
			len(cfg.Constraints), len(cfg.Synergies))
	}
	if cfg.SynergyTemperature != 0.5 {
		t.Fatalf("expected temperature 0.5, got %v", cfg.SynergyTemperature)
	}
	if cfg.Weights[role.Baron] != 1.5 {
		t.Fatalf("expected Baron weight 1.5, got %v", cfg.Weights[role.Baron])
	}
}

func TestBuildConfigRejectsBadConstraintSpec(t *testing.T) {
	registry := role.NewRegistry()
	req := &GenerateRequest{
		Players: 7,
		Constraints: []setup.ConstraintSpec{
			{Kind: "no_such_kind", Roles: []role.Role{"X"}},
		},
	}
	if _, err := BuildConfig(req, registry); err == nil {
		t.Fatalf("expected constraint build error")
	}
}
