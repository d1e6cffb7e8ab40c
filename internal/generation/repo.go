package generation

import "context"

// Repo defines persistence for generated documents.
type Repo interface {
	Create(ctx context.Context, doc GeneratedDocument) error
	GetByID(ctx context.Context, userID, docID string) (GeneratedDocument, error)
	ListByUser(ctx context.Context, userID string) ([]GeneratedDocument, error)
	SetStorageKey(ctx context.Context, docID, storageKey string) error
}
