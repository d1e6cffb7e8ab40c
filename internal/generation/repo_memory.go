package generation

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for local dev and tests.
type MemoryRepo struct {
	mu   sync.Mutex
	docs map[string]GeneratedDocument
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[string]GeneratedDocument)}
}

func (r *MemoryRepo) Create(_ context.Context, doc GeneratedDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = doc
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, userID, docID string) (GeneratedDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok || doc.UserID != userID {
		return GeneratedDocument{}, ErrNotFound
	}
	return doc, nil
}

func (r *MemoryRepo) ListByUser(_ context.Context, userID string) ([]GeneratedDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var docs []GeneratedDocument
	for _, doc := range r.docs {
		if doc.UserID == userID {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].CreatedAt.After(docs[j].CreatedAt) })
	return docs, nil
}

func (r *MemoryRepo) SetStorageKey(_ context.Context, docID, storageKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return ErrNotFound
	}
	key := storageKey
	doc.StorageKey = &key
	r.docs[docID] = doc
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
