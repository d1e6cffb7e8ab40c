package redaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// mappingTTL is how long a stored mapping stays valid for reverse lookup.
const mappingTTL = 30 * 24 * time.Hour

// Vault persists placeholder mappings so redacted documents can later be
// rehydrated. It is append-only: records are written once and never read
// back on the request path.
type Vault struct {
	Repo Repo

	// now is overridable in tests.
	now func() time.Time
}

func NewVault(repo Repo) *Vault {
	return &Vault{Repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Store writes the mapping and returns the new record id. An empty mapping
// is not persisted and yields an empty id.
func (v *Vault) Store(ctx context.Context, userID string, mapping Mapping) (string, error) {
	if len(mapping) == 0 {
		return "", nil
	}

	createdAt := v.now()
	rec := MappingRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		Placeholders: mapping,
		CreatedAt:    createdAt,
		ExpiresAt:    createdAt.Add(mappingTTL),
	}
	if err := v.Repo.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("store mapping: %w", err)
	}
	return rec.ID, nil
}
