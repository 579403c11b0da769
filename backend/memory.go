package backend

import "sync"

// Memory is an in-RAM Backend: a byte slice guarded by a mutex, grown with
// append. Used for tests and pure in-memory indexes.
type Memory struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ReadAt(off int64, n int) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := checkRange(int64(len(m.data)), off, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, m.data[off:off+int64(n)])
	return out, nil
}

func (m *Memory) WriteAt(off int64, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkRange(int64(len(m.data)), off, len(data)); err != nil {
		return err
	}
	copy(m.data[off:], data)
	return nil
}

func (m *Memory) Grow(extra int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	base := int64(len(m.data))
	m.data = append(m.data, make([]byte, extra)...)
	return base, nil
}

func (m *Memory) Len() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.data))
}

func (m *Memory) Flush() error { return nil }

func (m *Memory) Close() error { return nil }
