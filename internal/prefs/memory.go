package prefs

// Memory keeps preferences for the lifetime of the process only.
type Memory struct {
	values   map[string]string
	ReadOnly bool // reject writes, used to simulate unwritable storage
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Prefs.
func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set implements Prefs.
func (m *Memory) Set(key, value string) error {
	if m.ReadOnly {
		return ErrReadOnly
	}
	m.values[key] = value
	return nil
}

// Delete implements Prefs.
func (m *Memory) Delete(key string) error {
	if m.ReadOnly {
		return ErrReadOnly
	}
	delete(m.values, key)
	return nil
}
