package templates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for templates.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create validates and stores a new template.
func (s *Service) Create(ctx context.Context, t Template) (Template, error) {
	if err := validateDefinition(t.Name, t.Body, t.Fields); err != nil {
		return Template{}, err
	}

	if strings.TrimSpace(t.Version) == "" {
		t.Version = "1.0.0"
	}
	t.ID = uuid.NewString()
	now := nowUTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.DeletedAt = nil

	if err := s.Repo.Create(ctx, t); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Get returns a template by id.
func (s *Service) Get(ctx context.Context, templateID string) (Template, error) {
	if strings.TrimSpace(templateID) == "" {
		return Template{}, fmt.Errorf("%w: template id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, templateID)
}

// List returns templates, optionally filtered by category.
func (s *Service) List(ctx context.Context, category string) ([]Template, error) {
	return s.Repo.List(ctx, strings.TrimSpace(category))
}

// Patch carries a partial template update. A nil field means "not supplied";
// a non-nil pointer to an empty value means "set to empty".
type Patch struct {
	Name        *string
	Description *string
	Category    *string
	Version     *string
	Fields      *[]Field
	Body        *string
}

func (p Patch) isEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil &&
		p.Version == nil && p.Fields == nil && p.Body == nil
}

// Update applies a partial patch to a template. Only supplied fields change.
func (s *Service) Update(ctx context.Context, templateID string, patch Patch) (Template, error) {
	t, err := s.Get(ctx, templateID)
	if err != nil {
		return Template{}, err
	}
	if patch.isEmpty() {
		return t, nil
	}

	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Version != nil {
		t.Version = *patch.Version
	}
	if patch.Fields != nil {
		t.Fields = *patch.Fields
	}
	if patch.Body != nil {
		t.Body = *patch.Body
	}

	if err := validateDefinition(t.Name, t.Body, t.Fields); err != nil {
		return Template{}, err
	}

	t.UpdatedAt = nowUTC()
	if err := s.Repo.Update(ctx, t); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Delete removes a template by id.
func (s *Service) Delete(ctx context.Context, templateID string) error {
	if strings.TrimSpace(templateID) == "" {
		return fmt.Errorf("%w: template id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, templateID)
}

func validateDefinition(name, body string, fields []Field) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		fieldName := strings.TrimSpace(f.Name)
		if fieldName == "" {
			return fmt.Errorf("%w: field name is required", ErrInvalidInput)
		}
		if _, dup := seen[fieldName]; dup {
			return fmt.Errorf("%w: duplicate field name %q", ErrInvalidInput, fieldName)
		}
		seen[fieldName] = struct{}{}
	}
	return nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
