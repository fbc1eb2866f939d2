package setup

import (
	"fmt"

	"clocktower-lite/role"
)

// Constraint spec kinds accepted from config files and wire requests.
const (
	KindRequireAny      = "require_any"
	KindRequireAtLeastK = "require_at_least_k"
	KindForbidAll       = "forbid_all"
	KindDiscourageAll   = "discourage_all"
	KindEncourageAny    = "encourage_any"
	KindPreferBand      = "prefer_band"
)

// ConstraintSpec is the declarative form of one constraint, as it
// appears in YAML config files and JSON requests. Unused fields for a
// kind are ignored.
type ConstraintSpec struct {
	Kind    string      `json:"kind" yaml:"kind"`
	Roles   []role.Role `json:"roles" yaml:"roles"`
	K       int         `json:"k,omitempty" yaml:"k,omitempty"`
	Low     int         `json:"low,omitempty" yaml:"low,omitempty"`
	High    int         `json:"high,omitempty" yaml:"high,omitempty"`
	Penalty float64     `json:"penalty,omitempty" yaml:"penalty,omitempty"`
	Bonus   float64     `json:"bonus,omitempty" yaml:"bonus,omitempty"`
	Step    float64     `json:"step,omitempty" yaml:"step,omitempty"`
}

// Build turns the spec into its constraint value.
func (s ConstraintSpec) Build() (Constraint, error) {
	if len(s.Roles) == 0 {
		return nil, ErrInvalidArgument(fmt.Sprintf("constraint %q needs a role list", s.Kind))
	}
	switch s.Kind {
	case KindRequireAny:
		return RequireAny{Roles: s.Roles}, nil
	case KindRequireAtLeastK:
		if s.K < 1 {
			return nil, ErrInvalidArgument("require_at_least_k needs k >= 1")
		}
		return RequireAtLeastK{Roles: s.Roles, K: s.K}, nil
	case KindForbidAll:
		return ForbidAll{Roles: s.Roles}, nil
	case KindDiscourageAll:
		return DiscourageAll{Roles: s.Roles, Penalty: s.Penalty}, nil
	case KindEncourageAny:
		return EncourageAny{Roles: s.Roles, Bonus: s.Bonus}, nil
	case KindPreferBand:
		if s.Low > s.High {
			return nil, ErrInvalidArgument("prefer_band needs low <= high")
		}
		return PreferBand{Roles: s.Roles, Low: s.Low, High: s.High, Step: s.Step}, nil
	}
	return nil, ErrInvalidArgument(fmt.Sprintf("unknown constraint kind %q", s.Kind))
}

// BuildConstraints converts a spec list, preserving order.
func BuildConstraints(specs []ConstraintSpec) ([]Constraint, error) {
	out := make([]Constraint, 0, len(specs))
	for i, s := range specs {
		c, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
