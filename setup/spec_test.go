package setup

import (
	"errors"
	"testing"

	"clocktower-lite/role"
)

func TestConstraintSpecBuild(t *testing.T) {
	specs := []ConstraintSpec{
		{Kind: KindRequireAny, Roles: []role.Role{role.Drunk}},
		{Kind: KindRequireAtLeastK, Roles: []role.Role{role.Chef, role.Empath}, K: 2},
		{Kind: KindForbidAll, Roles: []role.Role{role.Spy, role.Poisoner}},
		{Kind: KindDiscourageAll, Roles: []role.Role{role.Spy}, Penalty: 3},
		{Kind: KindEncourageAny, Roles: []role.Role{role.Drunk}, Bonus: 1},
		{Kind: KindPreferBand, Roles: []role.Role{role.Butler}, Low: 0, High: 1, Step: 1.5},
	}

	constraints, err := BuildConstraints(specs)
	if err != nil {
		t.Fatalf("BuildConstraints err: %v", err)
	}
	if len(constraints) != len(specs) {
		t.Fatalf("expected %d constraints, got %d", len(specs), len(constraints))
	}
	if _, ok := constraints[0].(RequireAny); !ok {
		t.Fatalf("expected RequireAny first, got %T", constraints[0])
	}
	if band, ok := constraints[5].(PreferBand); !ok || band.Step != 1.5 {
		t.Fatalf("expected PreferBand with step 1.5, got %+v", constraints[5])
	}
}

func TestConstraintSpecRejectsBadInput(t *testing.T) {
	var argErr InvalidArgumentError

	if _, err := (ConstraintSpec{Kind: "no_such_kind", Roles: []role.Role{"X"}}).Build(); !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError for unknown kind, got %v", err)
	}
	if _, err := (ConstraintSpec{Kind: KindRequireAny}).Build(); !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError for empty role list, got %v", err)
	}
	if _, err := (ConstraintSpec{Kind: KindRequireAtLeastK, Roles: []role.Role{"X"}}).Build(); !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError for missing k, got %v", err)
	}
	if _, err := (ConstraintSpec{Kind: KindPreferBand, Roles: []role.Role{"X"}, Low: 2, High: 1}).Build(); !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError for inverted band, got %v", err)
	}
}
