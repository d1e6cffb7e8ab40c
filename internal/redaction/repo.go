package redaction

import "context"

// Repo defines persistence for placeholder mappings. The store is
// append-only: no read, update, or delete operation is exposed.
type Repo interface {
	Create(ctx context.Context, rec MappingRecord) error
}
