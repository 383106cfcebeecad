package sdk

import "sort"

// State is the kv surface every contract reads and writes. Get returns nil for missing keys.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// MemoryState keeps the whole kv in a map and never touches disk.
// It is not safe for concurrent use.
type MemoryState struct {
	db map[string]string
}

// NewMemoryState returns an empty in-memory store.
func NewMemoryState() *MemoryState {
	return &MemoryState{
		db: make(map[string]string),
	}
}

func (m *MemoryState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemoryState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemoryState) Delete(key string) {
	delete(m.db, key)
}

// Len reports how many keys are stored.
func (m *MemoryState) Len() int {
	return len(m.db)
}

// Keys returns all keys sorted, so dumps stay stable between runs.
func (m *MemoryState) Keys() []string {
	keys := make([]string, 0, len(m.db))
	for k := range m.db {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot copies the full map. Tests compare snapshots to prove a failed call wrote nothing.
func (m *MemoryState) Snapshot() map[string]string {
	out := make(map[string]string, len(m.db))
	for k, v := range m.db {
		out[k] = v
	}
	return out
}

// Clear drops every key.
func (m *MemoryState) Clear() {
	m.db = make(map[string]string)
}
