// Package record captures one generator run as an auditable document:
// enough to reproduce the run (script, players, seed) and what it
// produced (attempts, score, the accepted setup).
package record

import (
	"time"

	"clocktower-lite/role"
	"clocktower-lite/setup"
)

type Record struct {
	Script        string      `json:"script"`
	Players       int         `json:"players"`
	Seed          int64       `json:"seed"`
	Attempts      int         `json:"attempts"`
	AcceptedEarly bool        `json:"accepted_early"`
	Score         float64     `json:"score"`
	Townsfolk     []role.Role `json:"townsfolk"`
	Outsiders     []role.Role `json:"outsiders"`
	Minions       []role.Role `json:"minions"`
	Demons        []role.Role `json:"demons"`
	CreatedAt     time.Time   `json:"created_at"`
}

// FromOutcome builds a record for one finished run. Seed is the seed
// the caller actually used; the engine does not expose its RNG.
func FromOutcome(scriptName string, players int, seed int64, o *setup.Outcome) *Record {
	if o == nil || o.Setup == nil {
		return nil
	}
	return &Record{
		Script:        scriptName,
		Players:       players,
		Seed:          seed,
		Attempts:      o.Attempts,
		AcceptedEarly: o.AcceptedEarly,
		Score:         o.Score,
		Townsfolk:     append([]role.Role{}, o.Setup.Townsfolk...),
		Outsiders:     append([]role.Role{}, o.Setup.Outsiders...),
		Minions:       append([]role.Role{}, o.Setup.Minions...),
		Demons:        append([]role.Role{}, o.Setup.Demons...),
		CreatedAt:     time.Now().UTC(),
	}
}
