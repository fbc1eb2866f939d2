package setup

import (
	"math"

	"clocktower-lite/role"
)

// Result is the outcome of one constraint evaluation. Feasible=false
// is an absolute veto; LogWeight only matters when Feasible is true.
type Result struct {
	Feasible  bool
	LogWeight float64
}

// Constraint scores one candidate role set. Implementations must be
// immutable values and carry no state between evaluations.
type Constraint interface {
	Evaluate(roles map[role.Role]bool, ctx Context) Result
}

// RequireAny vetoes any setup with no role from Roles in play.
type RequireAny struct {
	Roles []role.Role
}

func (c RequireAny) Evaluate(roles map[role.Role]bool, _ Context) Result {
	return Result{Feasible: countPresent(roles, c.Roles) >= 1}
}

// RequireAtLeastK vetoes any setup with fewer than K roles from Roles.
type RequireAtLeastK struct {
	Roles []role.Role
	K     int
}

func (c RequireAtLeastK) Evaluate(roles map[role.Role]bool, _ Context) Result {
	return Result{Feasible: countPresent(roles, c.Roles) >= c.K}
}

// ForbidAll vetoes setups where every role in Roles is in play at once.
type ForbidAll struct {
	Roles []role.Role
}

func (c ForbidAll) Evaluate(roles map[role.Role]bool, _ Context) Result {
	return Result{Feasible: countPresent(roles, c.Roles) < len(c.Roles)}
}

// DiscourageAll applies -|Penalty| when every role in Roles is in
// play. Never vetoes.
type DiscourageAll struct {
	Roles   []role.Role
	Penalty float64
}

func (c DiscourageAll) Evaluate(roles map[role.Role]bool, _ Context) Result {
	if countPresent(roles, c.Roles) == len(c.Roles) {
		return Result{Feasible: true, LogWeight: -math.Abs(c.Penalty)}
	}
	return Result{Feasible: true}
}

// EncourageAny applies +|Bonus| when any role in Roles is in play.
// Never vetoes.
type EncourageAny struct {
	Roles []role.Role
	Bonus float64
}

func (c EncourageAny) Evaluate(roles map[role.Role]bool, _ Context) Result {
	if countPresent(roles, c.Roles) >= 1 {
		return Result{Feasible: true, LogWeight: math.Abs(c.Bonus)}
	}
	return Result{Feasible: true}
}

// PreferBand prefers the in-play count of Roles to sit inside
// [Low, High], charging -|Step| per role outside the band. Never
// vetoes.
type PreferBand struct {
	Roles []role.Role
	Low   int
	High  int
	Step  float64
}

func (c PreferBand) Evaluate(roles map[role.Role]bool, _ Context) Result {
	n := countPresent(roles, c.Roles)
	if c.Low <= n && n <= c.High {
		return Result{Feasible: true}
	}
	dist := n - c.High
	if n < c.Low {
		dist = c.Low - n
	}
	return Result{Feasible: true, LogWeight: -math.Abs(c.Step) * float64(dist)}
}

func countPresent(roles map[role.Role]bool, subset []role.Role) int {
	n := 0
	for _, r := range subset {
		if roles[r] {
			n++
		}
	}
	return n
}
