package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"legaldraft-backend/internal/redaction"
	"legaldraft-backend/internal/templates"
)

func newTestService(t *testing.T) (*Service, *templates.Service, *redaction.MemoryRepo) {
	t.Helper()
	tplSvc := templates.NewService(templates.NewMemoryRepo())
	mappingRepo := redaction.NewMemoryRepo()
	svc := NewService(
		tplSvc,
		redaction.NewEngine(redaction.DefaultCategories()),
		redaction.NewVault(mappingRepo),
		NewMemoryRepo(),
		nil,
	)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }
	return svc, tplSvc, mappingRepo
}

func seedTemplate(t *testing.T, tplSvc *templates.Service, body string, fields []templates.Field) templates.Template {
	t.Helper()
	tpl, err := tplSvc.Create(context.Background(), templates.Template{
		Name:   "Affidavit",
		Body:   body,
		Fields: fields,
	})
	if err != nil {
		t.Fatalf("seed template: %v", err)
	}
	return tpl
}

func TestRenderGeneratesFromOriginalInputs(t *testing.T) {
	svc, tplSvc, mappingRepo := newTestService(t)
	tpl := seedTemplate(t, tplSvc, "Hello {{name}}, PAN {{pan}}", []templates.Field{
		{Name: "name", Label: "Full Name", Required: true, IsPII: true},
		{Name: "pan", Label: "PAN", Required: true},
	})

	doc, err := svc.Render(context.Background(), "guest:u1", RenderParams{
		TemplateID: tpl.ID,
		Inputs:     map[string]any{"name": "Jane Doe", "pan": "ABCDE1234F"},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if doc.GeneratedText != "Hello Jane Doe, PAN ABCDE1234F" {
		t.Fatalf("GeneratedText = %q, want original values", doc.GeneratedText)
	}
	if doc.InputsHash == "" {
		t.Fatal("InputsHash not set")
	}
	if doc.TemplateVersion != tpl.Version {
		t.Fatalf("TemplateVersion = %q", doc.TemplateVersion)
	}
	if doc.MappingID == nil {
		t.Fatal("expected a mapping id")
	}

	rec, ok := mappingRepo.Get(*doc.MappingID)
	if !ok {
		t.Fatal("mapping not persisted")
	}
	if rec.Placeholders["[[NAME]]"] != "Jane Doe" {
		t.Fatalf("Placeholders = %v, want [[NAME]] -> Jane Doe", rec.Placeholders)
	}
	if rec.Placeholders["[[PAN_1]]"] != "ABCDE1234F" {
		t.Fatalf("Placeholders = %v, want [[PAN_1]] -> ABCDE1234F", rec.Placeholders)
	}
	if len(doc.PlaceholderKeys) != 2 {
		t.Fatalf("PlaceholderKeys = %v", doc.PlaceholderKeys)
	}
}

func TestRenderMissingFieldsAggregated(t *testing.T) {
	svc, tplSvc, _ := newTestService(t)
	tpl := seedTemplate(t, tplSvc, "{{a}} {{b}} {{c}}", []templates.Field{
		{Name: "a", Label: "Label A", Required: true},
		{Name: "b", Label: "Label B", Required: true},
		{Name: "c", Label: "Label C"},
	})

	_, err := svc.Render(context.Background(), "guest:u1", RenderParams{
		TemplateID: tpl.ID,
		Inputs:     map[string]any{"a": "   "},
	})

	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingFieldsError", err)
	}
	if len(missing.Labels) != 2 || missing.Labels[0] != "Label A" || missing.Labels[1] != "Label B" {
		t.Fatalf("Labels = %v", missing.Labels)
	}
	if missing.Error() != "Missing required fields: Label A, Label B" {
		t.Fatalf("Error() = %q", missing.Error())
	}
}

func TestRenderTemplateNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Render(context.Background(), "guest:u1", RenderParams{TemplateID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRenderNoPIIMeansNoMapping(t *testing.T) {
	svc, tplSvc, mappingRepo := newTestService(t)
	tpl := seedTemplate(t, tplSvc, "Subject: {{subject}}", []templates.Field{
		{Name: "subject", Label: "Subject", Required: true},
	})

	doc, err := svc.Render(context.Background(), "guest:u1", RenderParams{
		TemplateID: tpl.ID,
		Inputs:     map[string]any{"subject": "general notice"},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.MappingID != nil {
		t.Fatalf("MappingID = %v, want nil", *doc.MappingID)
	}
	if len(doc.PlaceholderKeys) != 0 {
		t.Fatalf("PlaceholderKeys = %v", doc.PlaceholderKeys)
	}
	if _, ok := mappingRepo.Get(""); ok {
		t.Fatal("unexpected empty-id mapping record")
	}
}

func TestRenderFailureSurfacesAs400Class(t *testing.T) {
	svc, tplSvc, _ := newTestService(t)
	tpl := seedTemplate(t, tplSvc, "Hello {{name}} and {{unknown_marker}}", []templates.Field{
		{Name: "name", Label: "Name", Required: true},
	})

	_, err := svc.Render(context.Background(), "guest:u1", RenderParams{
		TemplateID: tpl.ID,
		Inputs:     map[string]any{"name": "Jane"},
	})
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("err = %v, want ErrRenderFailed", err)
	}
}

func TestGetAndListScopedToUser(t *testing.T) {
	svc, tplSvc, _ := newTestService(t)
	tpl := seedTemplate(t, tplSvc, "Note: {{note}}", []templates.Field{
		{Name: "note", Label: "Note", Required: true},
	})

	doc, err := svc.Render(context.Background(), "guest:owner", RenderParams{
		TemplateID: tpl.ID,
		Inputs:     map[string]any{"note": "hello"},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if _, err := svc.Get(context.Background(), "guest:other", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user Get err = %v, want ErrNotFound", err)
	}

	docs, err := svc.List(context.Background(), "guest:owner")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != doc.ID {
		t.Fatalf("List = %v", docs)
	}
}
