package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"clocktower-lite/role"
	"clocktower-lite/setup"
)

// fileConfig is the YAML shape of a randomizer config file.
type fileConfig struct {
	Script             string                 `yaml:"script"`
	ScriptsFile        string                 `yaml:"scripts_file"`
	Weights            map[string]float64     `yaml:"weights"`
	Constraints        []setup.ConstraintSpec `yaml:"constraints"`
	Synergies          []synergyEntry         `yaml:"synergies"`
	SynergyTemperature *float64               `yaml:"synergy_temperature"`
	MaxAttempts        int                    `yaml:"max_attempts"`
}

type synergyEntry struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	Score float64 `yaml:"score"`
}

// loadConfig reads a YAML file and builds the engine config. An empty
// path yields the zero config (no weights, no constraints).
func loadConfig(path string) (setup.Config, error) {
	cfg := setup.Config{SynergyTemperature: 1}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	registry := role.NewRegistry()
	if fc.ScriptsFile != "" {
		if err := registry.LoadFromFile(fc.ScriptsFile); err != nil {
			return cfg, err
		}
	}
	if fc.Script != "" {
		script := registry.Get(fc.Script)
		if script == nil {
			return cfg, fmt.Errorf("unknown script %q", fc.Script)
		}
		cfg.Script = script
	}

	if len(fc.Weights) > 0 {
		cfg.Weights = make(map[role.Role]float64, len(fc.Weights))
		for name, w := range fc.Weights {
			cfg.Weights[role.Role(name)] = w
		}
	}

	cfg.Constraints, err = setup.BuildConstraints(fc.Constraints)
	if err != nil {
		return cfg, err
	}

	for _, s := range fc.Synergies {
		cfg.Synergies = append(cfg.Synergies, setup.Synergy{
			A:     role.Role(s.A),
			B:     role.Role(s.B),
			Score: s.Score,
		})
	}
	if fc.SynergyTemperature != nil {
		cfg.SynergyTemperature = *fc.SynergyTemperature
	}
	cfg.MaxAttempts = fc.MaxAttempts
	return cfg, nil
}
