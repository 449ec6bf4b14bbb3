package docstore

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// implements Store in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	docs     map[string]Document
	watchers *watchers
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     make(map[string]Document),
		watchers: newWatchers(),
	}
}

func (s *MemoryStore) Get(ctx context.Context, path string) (Document, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[path]
	if !ok {
		return nil, ErrNotFound
	}

	return cloneDocument(doc), nil
}

func (s *MemoryStore) Set(_ context.Context, path string, data Document) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	s.mu.Lock()
	doc, ok := s.docs[path]
	if !ok {
		doc = make(Document)
		s.docs[path] = doc
	}
	mergeInto(doc, data)
	s.mu.Unlock()

	s.watchers.notify(path)
	return nil
}

func (s *MemoryStore) DeleteFields(_ context.Context, path string, fields ...string) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	s.mu.Lock()
	doc, ok := s.docs[path]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}

	for _, f := range fields {
		deleteField(doc, f)
	}
	s.mu.Unlock()

	s.watchers.notify(path)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, path string) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.docs, path)
	s.mu.Unlock()

	s.watchers.notify(path)
	return nil
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]Snapshot, error) {
	if err := ValidateCollectionPath(collection); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := collection + "/"
	var out []Snapshot

	for path, doc := range s.docs {
		rest, ok := strings.CutPrefix(path, prefix)
		if !ok || strings.Contains(rest, "/") {
			continue
		}

		out = append(out, Snapshot{Path: path, Exists: true, Data: cloneDocument(doc)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (s *MemoryStore) Subscribe(ctx context.Context, path string, fn Listener) (Subscription, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	w, err := s.watchers.add(ctx, path, s.Get, fn)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (s *MemoryStore) Close() error {
	s.watchers.closeAll()
	return nil
}
