// Package codec defines the JSON envelopes spoken over the WebSocket
// and their translation into engine configs.
package codec

import (
	"encoding/json"
	"fmt"

	"clocktower-lite/record"
	"clocktower-lite/role"
	"clocktower-lite/setup"
)

// Client message types.
const (
	ClientTypeGenerate = "generate"
	ClientTypeScripts  = "scripts"
)

// Server message types.
const (
	ServerTypeSetup   = "setup"
	ServerTypeScripts = "scripts"
	ServerTypeError   = "error"
)

type ClientEnvelope struct {
	Type      string           `json:"type"`
	RequestID uint64           `json:"requestId"`
	Generate  *GenerateRequest `json:"generate,omitempty"`
}

// GenerateRequest asks the server for one randomized setup.
type GenerateRequest struct {
	Script             string                 `json:"script,omitempty"`
	Players            int                    `json:"players"`
	Seed               int64                  `json:"seed,omitempty"`
	Weights            map[string]float64     `json:"weights,omitempty"`
	Constraints        []setup.ConstraintSpec `json:"constraints,omitempty"`
	Synergies          []SynergyEntry         `json:"synergies,omitempty"`
	SynergyTemperature *float64               `json:"synergyTemperature,omitempty"`
	MaxAttempts        int                    `json:"maxAttempts,omitempty"`
}

type SynergyEntry struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

type ServerEnvelope struct {
	Type      string             `json:"type"`
	RequestID uint64             `json:"requestId,omitempty"`
	Setup     *record.WireRecord `json:"setup,omitempty"`
	ArchiveID string             `json:"archiveId,omitempty"`
	Scripts   []string           `json:"scripts,omitempty"`
	Error     *ErrorDetail       `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// DecodeClient parses one client frame.
func DecodeClient(data []byte) (*ClientEnvelope, error) {
	var env ClientEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// EncodeServer marshals one server frame.
func EncodeServer(env *ServerEnvelope) ([]byte, error) {
	return json.Marshal(env)
}

// BuildConfig turns a generate request into an engine config, resolving
// the script against the registry.
func BuildConfig(req *GenerateRequest, registry *role.ScriptRegistry) (setup.Config, error) {
	cfg := setup.Config{
		Seed:               req.Seed,
		MaxAttempts:        req.MaxAttempts,
		SynergyTemperature: 1,
	}

	if req.Script != "" {
		script := registry.Get(req.Script)
		if script == nil {
			return cfg, fmt.Errorf("unknown script %q", req.Script)
		}
		cfg.Script = script
	}

	if len(req.Weights) > 0 {
		cfg.Weights = make(map[role.Role]float64, len(req.Weights))
		for name, w := range req.Weights {
			cfg.Weights[role.Role(name)] = w
		}
	}

	constraints, err := setup.BuildConstraints(req.Constraints)
	if err != nil {
		return cfg, err
	}
	cfg.Constraints = constraints

	for _, s := range req.Synergies {
		cfg.Synergies = append(cfg.Synergies, setup.Synergy{
			A:     role.Role(s.A),
			B:     role.Role(s.B),
			Score: s.Score,
		})
	}
	if req.SynergyTemperature != nil {
		cfg.SynergyTemperature = *req.SynergyTemperature
	}
	return cfg, nil
}
