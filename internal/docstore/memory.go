package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in process memory. Records are stored
// serialized so callers never share slices with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Read(_ context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.RLock()
	data, ok := s.data[collection]
	s.mu.RUnlock()
	if !ok {
		return []json.RawMessage{}, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *MemoryStore) Write(_ context.Context, collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[collection] = data
	s.mu.Unlock()
	return nil
}
