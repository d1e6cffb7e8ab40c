package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mappingID := "mapping-1"
	doc := GeneratedDocument{
		ID:              "doc-1",
		UserID:          "guest:u1",
		TemplateID:      "tpl-1",
		TemplateName:    "Complaint",
		TemplateVersion: "1.0.0",
		GeneratedText:   "Hello Jane",
		InputsHash:      "deadbeef",
		MappingID:       &mappingID,
		PlaceholderKeys: []string{"[[NAME]]"},
		OutputFormat:    OutputFormatText,
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO generated_documents").
		WithArgs(
			doc.ID,
			doc.UserID,
			doc.TemplateID,
			doc.TemplateName,
			doc.TemplateVersion,
			doc.GeneratedText,
			doc.InputsHash,
			doc.MappingID,
			sqlmock.AnyArg(), // placeholder_keys JSON
			doc.OutputFormat,
			doc.StorageKey,
			doc.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, user_id, template_id").
		WithArgs("missing", "guest:u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "guest:u1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSetStorageKeyNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE generated_documents SET storage_key").
		WithArgs("key", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetStorageKey(context.Background(), "missing", "key"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
