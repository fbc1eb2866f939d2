package role

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// ScriptRegistry holds all known script definitions.
type ScriptRegistry struct {
	mu      sync.RWMutex
	scripts map[string]*Script
}

// NewRegistry creates a registry pre-loaded with the built-in scripts.
func NewRegistry() *ScriptRegistry {
	r := &ScriptRegistry{
		scripts: make(map[string]*Script),
	}
	tb := TroubleBrewing()
	r.scripts[tb.Name] = tb
	return r
}

// LoadFromFile loads script definitions from a JSON file.
func (r *ScriptRegistry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scripts file: %w", err)
	}
	return r.LoadFromJSON(data)
}

// LoadFromJSON loads script definitions from raw JSON bytes. Every
// script must pass validation; a bad entry rejects the whole batch.
func (r *ScriptRegistry) LoadFromJSON(data []byte) error {
	var list []*Script
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse scripts JSON: %w", err)
	}
	for _, s := range list {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range list {
		r.scripts[s.Name] = s
	}
	return nil
}

// Get returns a script by name.
func (r *ScriptRegistry) Get(name string) *Script {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scripts[name]
}

// All returns a snapshot of all registered scripts.
func (r *ScriptRegistry) All() []*Script {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Script, 0, len(r.scripts))
	for _, s := range r.scripts {
		out = append(out, s)
	}
	return out
}

// Count returns the number of registered scripts.
func (r *ScriptRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.scripts)
}
