package fs

import (
	"github.com/aretw0/introspection"
)

// ScannerState exposes internal state for observability.
type ScannerState struct {
	Root     string   `json:"root"`
	Ignore   []string `json:"ignore,omitempty"`
	Workers  int      `json:"workers"`
	LastScan *Stats   `json:"last_scan,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Scanner) State() any {
	state := ScannerState{
		Root:    s.config.Root,
		Ignore:  s.config.Ignore,
		Workers: s.config.Workers,
	}
	if stats, ok := s.Stats(); ok {
		state.LastScan = &stats
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Scanner) ComponentType() string {
	return "scanner"
}

var _ introspection.Introspectable = (*Scanner)(nil)
var _ introspection.Component = (*Scanner)(nil)
