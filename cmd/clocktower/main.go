package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"clocktower-lite/record"
	"clocktower-lite/role"
	"clocktower-lite/setup"
)

func main() {
	players := flag.Int("players", 10, "player count (5..15)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	configPath := flag.String("config", "", "YAML config with weights, constraints and synergies")
	asJSON := flag.Bool("json", false, "print the full generation record as JSON")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("[Clocktower] config: %v", err)
	}
	cfg.Seed = *seed

	g, err := setup.NewGenerator(cfg)
	if err != nil {
		log.Fatalf("[Clocktower] %v", err)
	}

	outcome, err := g.GenerateOutcome(*players)
	if err != nil {
		log.Fatalf("[Clocktower] %v", err)
	}

	if *asJSON {
		rec := record.FromOutcome(g.Script().Name, *players, *seed, outcome)
		data, err := record.Encode(rec)
		if err != nil {
			log.Fatalf("[Clocktower] encode record: %v", err)
		}
		os.Stdout.Write(append(data, '\n'))
		return
	}

	fmt.Printf("Setup for %d players (%s):\n", *players, g.Script().Name)
	for _, cat := range role.Categories {
		fmt.Printf("%-9s: %v\n", cat, outcome.Setup.List(cat))
	}
	if !outcome.AcceptedEarly {
		fmt.Printf("(best of %d attempts, no early acceptance)\n", outcome.Attempts)
	}
}
