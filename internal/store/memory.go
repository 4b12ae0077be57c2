package store

import "context"

// MemorySlot keeps slot values in process memory only. It backs ephemeral
// sessions and tests; nothing survives a restart.
type MemorySlot struct {
	values map[string][]byte
}

func NewMemory() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

func (m *MemorySlot) Load(_ context.Context, key string) ([]byte, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemorySlot) Save(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *MemorySlot) Clear(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *MemorySlot) Close() error {
	return nil
}
