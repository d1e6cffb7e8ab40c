package redaction

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for local dev and tests.
type MemoryRepo struct {
	mu      sync.Mutex
	records map[string]MappingRecord
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]MappingRecord)}
}

func (r *MemoryRepo) Create(_ context.Context, rec MappingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = rec
	return nil
}

// Get returns a stored record for test assertions.
func (r *MemoryRepo) Get(id string) (MappingRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	return rec, ok
}

var _ Repo = (*MemoryRepo)(nil)
