package generation

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

func (r *PGRepo) Create(ctx context.Context, doc GeneratedDocument) error {
	const query = `
INSERT INTO generated_documents (
    id, user_id, template_id, template_name, template_version, generated_text,
    inputs_hash, mapping_id, placeholder_keys, output_format, storage_key, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	keysJSON, err := json.Marshal(doc.PlaceholderKeys)
	if err != nil {
		return fmt.Errorf("marshal placeholder keys: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.TemplateID,
		doc.TemplateName,
		doc.TemplateVersion,
		doc.GeneratedText,
		doc.InputsHash,
		doc.MappingID,
		keysJSON,
		doc.OutputFormat,
		doc.StorageKey,
		doc.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, docID string) (GeneratedDocument, error) {
	const query = `
SELECT id, user_id, template_id, template_name, template_version, generated_text,
       inputs_hash, mapping_id, placeholder_keys, output_format, storage_key, created_at
FROM generated_documents
WHERE id = $1 AND user_id = $2`

	row := r.DB.QueryRowContext(ctx, query, docID, userID)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GeneratedDocument{}, ErrNotFound
	}
	return doc, err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]GeneratedDocument, error) {
	const query = `
SELECT id, user_id, template_id, template_name, template_version, generated_text,
       inputs_hash, mapping_id, placeholder_keys, output_format, storage_key, created_at
FROM generated_documents
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []GeneratedDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *PGRepo) SetStorageKey(ctx context.Context, docID, storageKey string) error {
	const query = `UPDATE generated_documents SET storage_key = $1 WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, storageKey, docID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (GeneratedDocument, error) {
	var (
		doc      GeneratedDocument
		keysJSON []byte
	)
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.TemplateID,
		&doc.TemplateName,
		&doc.TemplateVersion,
		&doc.GeneratedText,
		&doc.InputsHash,
		&doc.MappingID,
		&keysJSON,
		&doc.OutputFormat,
		&doc.StorageKey,
		&doc.CreatedAt,
	)
	if err != nil {
		return GeneratedDocument{}, err
	}
	if len(keysJSON) > 0 {
		if err := json.Unmarshal(keysJSON, &doc.PlaceholderKeys); err != nil {
			return GeneratedDocument{}, fmt.Errorf("unmarshal placeholder keys: %w", err)
		}
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
