package record

import (
	"encoding/json"
	"time"

	"clocktower-lite/role"
)

const WireVersion = 1

// WireRecord is the external JSON form served to clients and stored in
// the archive. Field names are part of the wire contract.
type WireRecord struct {
	WireVersion   int      `json:"wireVersion"`
	Script        string   `json:"script"`
	Players       int      `json:"players"`
	Seed          int64    `json:"seed"`
	Attempts      int      `json:"attempts"`
	AcceptedEarly bool     `json:"acceptedEarly"`
	Score         float64  `json:"score"`
	Townsfolk     []string `json:"townsfolk"`
	Outsiders     []string `json:"outsiders"`
	Minions       []string `json:"minions"`
	Demons        []string `json:"demons"`
	CreatedAtMs   int64    `json:"createdAtMs"`
}

func ToWireRecord(r *Record) *WireRecord {
	if r == nil {
		return nil
	}
	return &WireRecord{
		WireVersion:   WireVersion,
		Script:        r.Script,
		Players:       r.Players,
		Seed:          r.Seed,
		Attempts:      r.Attempts,
		AcceptedEarly: r.AcceptedEarly,
		Score:         r.Score,
		Townsfolk:     roleNames(r.Townsfolk),
		Outsiders:     roleNames(r.Outsiders),
		Minions:       roleNames(r.Minions),
		Demons:        roleNames(r.Demons),
		CreatedAtMs:   r.CreatedAt.UnixMilli(),
	}
}

func FromWireRecord(w *WireRecord) *Record {
	if w == nil {
		return nil
	}
	return &Record{
		Script:        w.Script,
		Players:       w.Players,
		Seed:          w.Seed,
		Attempts:      w.Attempts,
		AcceptedEarly: w.AcceptedEarly,
		Score:         w.Score,
		Townsfolk:     toRoles(w.Townsfolk),
		Outsiders:     toRoles(w.Outsiders),
		Minions:       toRoles(w.Minions),
		Demons:        toRoles(w.Demons),
		CreatedAt:     time.UnixMilli(w.CreatedAtMs).UTC(),
	}
}

// Encode marshals the wire form of a record.
func Encode(r *Record) ([]byte, error) {
	return json.Marshal(ToWireRecord(r))
}

// Decode parses a wire record back into a Record.
func Decode(data []byte) (*Record, error) {
	var w WireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return FromWireRecord(&w), nil
}

func roleNames(roles []role.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func toRoles(names []string) []role.Role {
	out := make([]role.Role, 0, len(names))
	for _, n := range names {
		out = append(out, role.Role(n))
	}
	return out
}
