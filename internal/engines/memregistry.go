package engines

import (
	"slices"
	"sync"
)

// MemoryRegistry is an in-process RegistryStore. It backs the Registry
// engine in tests and dry runs on hosts without a Windows registry.
type MemoryRegistry struct {
	mu     sync.Mutex
	values map[memKey]any
}

type memKey struct {
	hive Hive
	key  string
	name string
}

// NewMemoryRegistry returns an empty store.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{values: make(map[memKey]any)}
}

func (m *MemoryRegistry) ReadString(h Hive, key, name string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[memKey{h, key, name}].(string)
	return v, ok, nil
}

func (m *MemoryRegistry) ReadBinary(h Hive, key, name string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[memKey{h, key, name}].([]byte)
	return slices.Clone(v), ok, nil
}

func (m *MemoryRegistry) WriteString(h Hive, key, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[memKey{h, key, name}] = value
	return nil
}

func (m *MemoryRegistry) WriteBinary(h Hive, key, name string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[memKey{h, key, name}] = slices.Clone(value)
	return nil
}

func (m *MemoryRegistry) DeleteValue(h Hive, key, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, memKey{h, key, name})
	return nil
}

// Len returns the number of stored values.
func (m *MemoryRegistry) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}
