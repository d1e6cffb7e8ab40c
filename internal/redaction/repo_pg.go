package redaction

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a placeholder mapping record.
func (r *PGRepo) Create(ctx context.Context, rec MappingRecord) error {
	const query = `
INSERT INTO pii_mappings (id, user_id, placeholders, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5)`

	placeholdersJSON, err := json.Marshal(rec.Placeholders)
	if err != nil {
		return fmt.Errorf("marshal placeholders: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		placeholdersJSON,
		rec.CreatedAt,
		rec.ExpiresAt,
	)
	return err
}

var _ Repo = (*PGRepo)(nil)
