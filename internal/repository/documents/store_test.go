package documents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"travel/internal/repository"
)

// memStore is an in-memory repository.DocumentStore for tests.
type memStore struct {
	mu      sync.Mutex
	docs    map[string][]repository.Document
	nextID  int
	listErr error
	subs    map[string][]chan struct{}
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]repository.Document), subs: make(map[string][]chan struct{})}
}

// putRaw stores a document as-is, bypassing encoding.
func (m *memStore) putRaw(collection, id, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection] = append(m.docs[collection], repository.Document{ID: id, Data: json.RawMessage(data)})
}

func (m *memStore) ListAll(_ context.Context, collection string) ([]repository.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]repository.Document(nil), m.docs[collection]...), nil
}

func (m *memStore) ListOrdered(ctx context.Context, collection, field string, desc bool) ([]repository.Document, error) {
	docs, err := m.ListAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	key := func(d repository.Document) string {
		var fields map[string]any
		_ = json.Unmarshal(d.Data, &fields)
		return fmt.Sprint(fields[field])
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if desc {
			return key(docs[i]) > key(docs[j])
		}
		return key(docs[i]) < key(docs[j])
	})
	return docs, nil
}

func (m *memStore) GetByID(_ context.Context, collection, id string) (*repository.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs[collection] {
		if d.ID == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) Create(ctx context.Context, collection string, data any) (string, error) {
	m.mu.Lock()
	m.nextID++
	id := fmt.Sprintf("doc-%d", m.nextID)
	m.mu.Unlock()
	return id, m.Put(ctx, collection, id, data)
}

func (m *memStore) Put(_ context.Context, collection, id string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs[collection] {
		if d.ID == id {
			m.docs[collection][i].Data = payload
			m.notify(collection)
			return nil
		}
	}
	m.docs[collection] = append(m.docs[collection], repository.Document{ID: id, Data: payload})
	m.notify(collection)
	return nil
}

func (m *memStore) Update(_ context.Context, collection, id string, patch any) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	var changes map[string]json.RawMessage
	if err := json.Unmarshal(payload, &changes); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs[collection] {
		if d.ID != id {
			continue
		}
		var merged map[string]json.RawMessage
		if err := json.Unmarshal(d.Data, &merged); err != nil {
			return err
		}
		for k, v := range changes {
			merged[k] = v
		}
		out, _ := json.Marshal(merged)
		m.docs[collection][i].Data = out
		m.notify(collection)
		return nil
	}
	return repository.ErrNotFound
}

func (m *memStore) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.docs[collection]
	for i, d := range docs {
		if d.ID == id {
			m.docs[collection] = append(docs[:i:i], docs[i+1:]...)
			m.notify(collection)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memStore) SubscribeOrdered(ctx context.Context, collection, field string, desc bool) (<-chan []repository.Document, error) {
	changes := make(chan struct{}, 8)
	m.mu.Lock()
	m.subs[collection] = append(m.subs[collection], changes)
	m.mu.Unlock()

	out := make(chan []repository.Document)
	go func() {
		defer close(out)
		for {
			docs, err := m.ListOrdered(ctx, collection, field, desc)
			if err != nil {
				return
			}
			select {
			case out <- docs:
			case <-ctx.Done():
				return
			}
			select {
			case <-changes:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// notify must be called with mu held.
func (m *memStore) notify(collection string) {
	for _, ch := range m.subs[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

var errStoreDown = errors.New("store unavailable")

var _ repository.DocumentStore = (*memStore)(nil)
