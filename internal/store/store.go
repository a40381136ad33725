// Package store defines the durable key-value slot the todo list is persisted in.
//
// Backends live in subpackages (jsonstore, sqlitestore); Memory is kept here
// for ephemeral sessions and tests.
package store

// Store is a string-keyed, string-valued durable store.
type Store interface {
	// Get returns the value under key. ok is false when the key was never set.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value under key.
	Set(key, value string) error
}

// Memory is a Store that lives only as long as the process.
type Memory struct {
	data map[string]string
}

func NewMemory() *Memory { return &Memory{data: map[string]string{}} }

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	return nil
}
