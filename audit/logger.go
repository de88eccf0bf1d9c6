// Package audit records security-relevant vault operations. Events carry
// outcome and non-secret metadata only; no password, key or entry material
// ever reaches a log line.
package audit

import "time"

// Logger is the pluggable audit sink the vault manager logs through.
type Logger interface {
	Log(action string, success bool, metadata map[string]interface{}) error
	Close() error
}

// Event is a single audit record.
type Event struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Action    string                 `json:"action"`
	Success   bool                   `json:"success"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NoOpLogger discards everything. It is the default sink when auditing is
// disabled, so logging calls never have to nil-check.
type NoOpLogger struct{}

func NewNoOpLogger() Logger {
	return new(NoOpLogger)
}

func (n *NoOpLogger) Log(action string, success bool, metadata map[string]interface{}) error {
	return nil
}

func (n *NoOpLogger) Close() error {
	return nil
}
