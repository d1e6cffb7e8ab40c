package summaries

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, s Summary) error {
	const query = `
INSERT INTO summaries (id, user_id, original_text, summarized_text, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.UserID, s.OriginalText, s.SummarizedText, s.CreatedAt)
	return err
}

var _ Repo = (*PGRepo)(nil)
