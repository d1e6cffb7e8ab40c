package templates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new template.
func (r *PGRepo) Create(ctx context.Context, t Template) error {
	const query = `
INSERT INTO templates (id, name, description, category, version, fields, body, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	fieldsJSON, err := json.Marshal(t.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Description,
		t.Category,
		t.Version,
		fieldsJSON,
		t.Body,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

// GetByID returns a template by id.
func (r *PGRepo) GetByID(ctx context.Context, templateID string) (Template, error) {
	const query = `
SELECT id, name, description, category, version, fields, body, created_at, updated_at
FROM templates
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var t Template
	var fieldsJSON []byte
	err := r.DB.QueryRowContext(ctx, query, templateID).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.Category,
		&t.Version,
		&fieldsJSON,
		&t.Body,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	if len(fieldsJSON) > 0 {
		if err := json.Unmarshal(fieldsJSON, &t.Fields); err != nil {
			return Template{}, fmt.Errorf("unmarshal fields: %w", err)
		}
	}
	return t, nil
}

// List returns templates, optionally filtered by category, newest first.
func (r *PGRepo) List(ctx context.Context, category string) ([]Template, error) {
	query := `
SELECT id, name, description, category, version, fields, body, created_at, updated_at
FROM templates
WHERE deleted_at IS NULL`
	args := []any{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		var t Template
		var fieldsJSON []byte
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Description,
			&t.Category,
			&t.Version,
			&fieldsJSON,
			&t.Body,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if len(fieldsJSON) > 0 {
			if err := json.Unmarshal(fieldsJSON, &t.Fields); err != nil {
				return nil, fmt.Errorf("unmarshal fields: %w", err)
			}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update writes all mutable columns of a template.
func (r *PGRepo) Update(ctx context.Context, t Template) error {
	const query = `
UPDATE templates
SET name = $1, description = $2, category = $3, version = $4, fields = $5, body = $6, updated_at = $7
WHERE id = $8 AND deleted_at IS NULL`

	fieldsJSON, err := json.Marshal(t.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query,
		t.Name,
		t.Description,
		t.Category,
		t.Version,
		fieldsJSON,
		t.Body,
		t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a template.
func (r *PGRepo) Delete(ctx context.Context, templateID string) error {
	const query = `
UPDATE templates
SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, templateID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
