package role

import "fmt"

// Script holds the four disjoint role lists of one edition. List order
// is the canonical order used when printing an accepted setup.
type Script struct {
	Name      string `json:"name"`
	Townsfolk []Role `json:"townsfolk"`
	Outsiders []Role `json:"outsiders"`
	Minions   []Role `json:"minions"`
	Demons    []Role `json:"demons"`
}

// Validate checks global uniqueness of role names across the four
// lists and that the script can seat at least one demon.
func (s *Script) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("script must have a name")
	}
	if len(s.Demons) == 0 {
		return fmt.Errorf("script %q has no demon roles", s.Name)
	}
	seen := make(map[Role]Category, len(s.Townsfolk)+len(s.Outsiders)+len(s.Minions)+len(s.Demons))
	for _, cat := range Categories {
		for _, r := range s.List(cat) {
			if r == "" {
				return fmt.Errorf("script %q has an empty role name in %s", s.Name, cat)
			}
			if prev, dup := seen[r]; dup {
				return fmt.Errorf("script %q role %q appears in both %s and %s", s.Name, r, prev, cat)
			}
			seen[r] = cat
		}
	}
	return nil
}

// List returns the canonical role list for one category.
func (s *Script) List(cat Category) []Role {
	switch cat {
	case CategoryTownsfolk:
		return s.Townsfolk
	case CategoryOutsider:
		return s.Outsiders
	case CategoryMinion:
		return s.Minions
	case CategoryDemon:
		return s.Demons
	}
	return nil
}

// All returns every role of the script, townsfolk first, demons last.
func (s *Script) All() []Role {
	out := make([]Role, 0, len(s.Townsfolk)+len(s.Outsiders)+len(s.Minions)+len(s.Demons))
	for _, cat := range Categories {
		out = append(out, s.List(cat)...)
	}
	return out
}

// CategoryOf reports the category a role belongs to.
func (s *Script) CategoryOf(r Role) (Category, bool) {
	for _, cat := range Categories {
		for _, sr := range s.List(cat) {
			if sr == r {
				return cat, true
			}
		}
	}
	return 0, false
}

// Contains reports whether the role is part of the script.
func (s *Script) Contains(r Role) bool {
	_, ok := s.CategoryOf(r)
	return ok
}
