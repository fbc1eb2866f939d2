package setup

import "clocktower-lite/role"

// Counts 各阵营人数
type Counts struct {
	Townsfolk int
	Outsider  int
	Minion    int
	Demon     int
}

// Context carries per-attempt facts through constraint evaluation.
// None of the built-in constraints read it, but custom ones may.
type Context struct {
	Players int
	Counts  Counts
}

// Setup is one accepted role assignment. Each slice follows the
// script's canonical list order, not draw order.
type Setup struct {
	Townsfolk []role.Role
	Outsiders []role.Role
	Minions   []role.Role
	Demons    []role.Role
}

// List returns the category slice matching the script list order.
func (s *Setup) List(cat role.Category) []role.Role {
	switch cat {
	case role.CategoryTownsfolk:
		return s.Townsfolk
	case role.CategoryOutsider:
		return s.Outsiders
	case role.CategoryMinion:
		return s.Minions
	case role.CategoryDemon:
		return s.Demons
	}
	return nil
}

// All returns every role in play, townsfolk first, demons last.
func (s *Setup) All() []role.Role {
	out := make([]role.Role, 0, len(s.Townsfolk)+len(s.Outsiders)+len(s.Minions)+len(s.Demons))
	for _, cat := range role.Categories {
		out = append(out, s.List(cat)...)
	}
	return out
}

func toSet(roles []role.Role) map[role.Role]bool {
	set := make(map[role.Role]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}

// orderByList keeps only drawn roles, in the canonical list order.
func orderByList(list []role.Role, drawn map[role.Role]bool) []role.Role {
	out := make([]role.Role, 0, len(drawn))
	for _, r := range list {
		if drawn[r] {
			out = append(out, r)
		}
	}
	return out
}
