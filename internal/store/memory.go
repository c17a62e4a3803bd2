package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Memory is the development fallback. Last write wins under concurrency and
// nothing survives a restart; production runs on the SQLite adapter.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[Key]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[Key]json.RawMessage)}
}

func (m *Memory) Put(collection string, key Key, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[collection] == nil {
		m.data[collection] = make(map[Key]json.RawMessage)
	}
	m.data[collection][key] = data
	return nil
}

func (m *Memory) Get(collection string, key Key, out any) error {
	m.mu.RLock()
	data, ok := m.data[collection][key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(data, out)
}

func (m *Memory) Delete(collection string, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[collection], key)
	return nil
}

func (m *Memory) Query(collection, partition string) ([]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]Key, 0)
	for k := range m.data[collection] {
		if k.Partition == partition {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Sort < keys[j].Sort })

	var docs []json.RawMessage
	for _, k := range keys {
		docs = append(docs, m.data[collection][k])
	}
	return docs, nil
}

func (m *Memory) Close() error {
	return nil
}
