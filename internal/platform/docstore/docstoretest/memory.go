// Package docstoretest provides an in-memory docstore.Store for tests.
package docstoretest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
)

type entry struct {
	id     string
	body   []byte
	fields map[string]any
}

// MemoryStore keeps JSON-encoded records per collection in insertion order
// and evaluates filters the way the real backends do.
type MemoryStore struct {
	mu          sync.Mutex
	name        string
	seq         int
	collections map[string][]entry

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{name: name, collections: map[string][]entry{}}
}

func (s *MemoryStore) Name() string { return s.name }

func (s *MemoryStore) CreateDocument(_ context.Context, collection string, record any) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	body, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", fmt.Errorf("record is not an object: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	id := fmt.Sprintf("mem-%06d", s.seq)
	s.collections[collection] = append(s.collections[collection], entry{id: id, body: body, fields: fields})
	return id, nil
}

func (s *MemoryStore) GetDocuments(_ context.Context, collection string, filter docstore.Filter, limit int64) ([]docstore.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := []docstore.Document{}
	for _, e := range s.collections[collection] {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		if !matches(e.fields, filter) {
			continue
		}
		body := e.body
		docs = append(docs, docstore.NewDocument(e.id, func(v any) error {
			return json.Unmarshal(body, v)
		}))
	}
	return docs, nil
}

func (s *MemoryStore) CountDocuments(_ context.Context, collection string, filter docstore.Filter) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, e := range s.collections[collection] {
		if matches(e.fields, filter) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) ListCollectionNames(_ context.Context, limit int) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

func matches(fields map[string]any, f docstore.Filter) bool {
	for _, c := range f.Equals {
		if v, ok := fields[c.Field].(string); !ok || v != c.Value {
			return false
		}
	}
	if f.Match == nil {
		return true
	}
	term := strings.ToLower(f.Match.Term)
	for _, field := range f.Match.Fields {
		if v, ok := fields[field].(string); ok && strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
