package templates

import "context"

// Repo defines persistence operations for templates.
type Repo interface {
	Create(ctx context.Context, t Template) error
	GetByID(ctx context.Context, templateID string) (Template, error)
	List(ctx context.Context, category string) ([]Template, error)
	Update(ctx context.Context, t Template) error
	Delete(ctx context.Context, templateID string) error
}
