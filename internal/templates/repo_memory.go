package templates

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Template
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Template),
	}
}

// Create stores a template.
func (r *MemoryRepo) Create(ctx context.Context, t Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[t.ID] = t
	return nil
}

// GetByID returns a template by id.
func (r *MemoryRepo) GetByID(ctx context.Context, templateID string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.data[templateID]
	if !ok || t.DeletedAt != nil {
		return Template{}, ErrNotFound
	}
	return t, nil
}

// List returns templates, optionally filtered by category, newest first.
func (r *MemoryRepo) List(ctx context.Context, category string) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Template, 0, len(r.data))
	for _, t := range r.data {
		if t.DeletedAt != nil {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces a stored template.
func (r *MemoryRepo) Update(ctx context.Context, t Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[t.ID]
	if !ok || existing.DeletedAt != nil {
		return ErrNotFound
	}
	t.CreatedAt = existing.CreatedAt
	r.data[t.ID] = t
	return nil
}

// Delete soft-deletes a template.
func (r *MemoryRepo) Delete(ctx context.Context, templateID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.data[templateID]
	if !ok || t.DeletedAt != nil {
		return ErrNotFound
	}
	now := nowUTC()
	t.DeletedAt = &now
	r.data[templateID] = t
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
