package record

import (
	"testing"

	"clocktower-lite/role"
	"clocktower-lite/setup"
)

func TestFromOutcome(t *testing.T) {
	g, err := setup.NewGenerator(setup.Config{Seed: 123})
	if err != nil {
		t.Fatalf("NewGenerator err: %v", err)
	}
	outcome, err := g.GenerateOutcome(7)
	if err != nil {
		t.Fatalf("GenerateOutcome err: %v", err)
	}

	rec := FromOutcome("Trouble Brewing", 7, 123, outcome)
	if rec == nil {
		t.Fatalf("expected a record")
	}
	if rec.Script != "Trouble Brewing" || rec.Players != 7 || rec.Seed != 123 {
		t.Fatalf("unexpected run metadata: %+v", rec)
	}
	if !rec.AcceptedEarly || rec.Attempts != outcome.Attempts {
		t.Fatalf("unexpected outcome fields: %+v", rec)
	}
	if len(rec.Minions) != 1 || len(rec.Demons) != 1 {
		t.Fatalf("unexpected category sizes: %+v", rec)
	}

	// The record owns its slices.
	outcome.Setup.Minions[0] = "Mutant"
	if rec.Minions[0] == "Mutant" {
		t.Fatalf("record must copy the setup slices")
	}
}

func TestWireRoundTrip(t *testing.T) {
	rec := &Record{
		Script:        "Trouble Brewing",
		Players:       10,
		Seed:          42,
		Attempts:      3,
		AcceptedEarly: true,
		Score:         -1.5,
		Townsfolk:     []role.Role{role.Chef, role.Empath},
		Minions:       []role.Role{role.Baron},
		Demons:        []role.Role{role.Imp},
	}

	data, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode err: %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode err: %v", err)
	}
	if back.Script != rec.Script || back.Seed != rec.Seed || back.Score != rec.Score {
		t.Fatalf("round trip lost fields: %+v", back)
	}
	if len(back.Townsfolk) != 2 || back.Minions[0] != role.Baron {
		t.Fatalf("round trip lost roles: %+v", back)
	}
}
