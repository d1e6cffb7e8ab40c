package summaries

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu      sync.Mutex
	entries []Summary
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(_ context.Context, s Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, s)
	return nil
}

// Entries returns stored summaries for test assertions.
func (r *MemoryRepo) Entries() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Summary, len(r.entries))
	copy(out, r.entries)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
