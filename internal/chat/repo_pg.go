package chat

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, msg Message) error {
	const query = `
INSERT INTO chat_messages (id, user_id, document_id, message, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, msg.ID, msg.UserID, msg.DocumentID, msg.Message, msg.CreatedAt)
	return err
}

var _ Repo = (*PGRepo)(nil)
