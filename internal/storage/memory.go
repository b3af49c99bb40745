// ABOUTME: In-memory Store for tests and throwaway sessions.
// ABOUTME: Copies blobs on both paths so callers cannot alias stored state.
package storage

// Memory is a map-backed Store. The zero value is not usable; call
// NewMemory.
type Memory struct {
	blobs map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Load returns a copy of the stored blob, or (nil, nil) if absent.
func (m *Memory) Load(collection string) ([]byte, error) {
	data, ok := m.blobs[collection]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save stores a copy of the blob.
func (m *Memory) Save(collection string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[collection] = stored
	return nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error {
	return nil
}
