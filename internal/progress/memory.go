package progress

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and as the degraded mode
// when the database cannot be opened.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]LessonProgress
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]LessonProgress)}
}

func (m *MemoryStore) Get(ctx context.Context, slug string) (LessonProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[slug], nil
}

func (m *MemoryStore) Set(ctx context.Context, slug string, u Update) (LessonProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	merged := u.Apply(m.records[slug])
	m.records[slug] = merged
	return merged, nil
}

func (m *MemoryStore) All(ctx context.Context) (map[string]LessonProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]LessonProgress, len(m.records))
	for k, v := range m.records {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) Reset(ctx context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, slug)
	return nil
}

func (m *MemoryStore) ResetAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]LessonProgress)
	return nil
}
