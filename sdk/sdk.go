// Package sdk is the host surface the contracts run against: a kv store,
// an event log and a clock. Everything is in-process; there is no chain.
package sdk

import "time"

// Clock returns the current host time. Message timestamps are taken from it.
type Clock func() time.Time

// MockTimestamp is what NewMockHost reports as "now", so test expectations stay stable.
var MockTimestamp = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Host bundles the state, logger and clock a contract instance executes against.
// A Host is not safe for concurrent use.
type Host struct {
	State  State
	Logger Logger
	Now    Clock
}

// NewHost wires a host. Nil logger and clock fall back to a discarding logger and time.Now.
func NewHost(state State, logger Logger, now Clock) *Host {
	if state == nil {
		state = NewMemoryState()
	}
	if logger == nil {
		logger = NopLogger{}
	}
	if now == nil {
		now = time.Now
	}
	return &Host{
		State:  state,
		Logger: logger,
		Now:    now,
	}
}

// NewMockHost returns a fresh in-memory host with a recording logger and a frozen clock.
func NewMockHost() *Host {
	return NewHost(NewMemoryState(), NewRecordingLogger(), FixedClock(MockTimestamp))
}

// Log writes a contract event line.
func (h *Host) Log(msg string) {
	h.Logger.Log(msg)
}

// Timestamp returns the host time in unix milliseconds.
func (h *Host) Timestamp() int64 {
	return h.Now().UnixMilli()
}

// StateSetObject stores a key/value string pair.
func (h *Host) StateSetObject(key string, value string) {
	h.State.Set(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
func (h *Host) StateGetObject(key string) *string {
	return h.State.Get(key)
}

// StateDeleteObject removes the key entirely.
func (h *Host) StateDeleteObject(key string) {
	h.State.Delete(key)
}
