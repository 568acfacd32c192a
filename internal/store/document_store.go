package store

import (
	"sort"
	"sync"

	"docqa/internal/model"
)

// DocumentStore is the process-lifetime document table: filename -> extracted
// text record. Entries live until the process exits; there is no eviction and
// no delete. Concurrent writes to the same identifier are last-writer-wins.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]model.Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]model.Document)}
}

// Put inserts the document, overwriting any existing entry with the same ID.
func (s *DocumentStore) Put(doc model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

func (s *DocumentStore) Get(id string) (model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// List returns a snapshot of all documents sorted by ID.
func (s *DocumentStore) List() []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]model.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
