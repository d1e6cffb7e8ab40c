package templates

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	created, err := svc.Create(context.Background(), Template{
		Name: "Affidavit",
		Body: "I, {{name}}, declare the above is true.",
		Fields: []Field{
			{Name: "name", Label: "Name", Required: true, IsPII: true},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Version != "1.0.0" {
		t.Fatalf("Version = %q, want default 1.0.0", created.Version)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("timestamps not set")
	}
}

func TestCreateRejectsInvalidDefinitions(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	cases := []struct {
		name string
		tpl  Template
	}{
		{"missing name", Template{Body: "body"}},
		{"missing body", Template{Name: "x"}},
		{"blank field name", Template{Name: "x", Body: "b", Fields: []Field{{Name: "  "}}}},
		{"duplicate field name", Template{Name: "x", Body: "b", Fields: []Field{{Name: "a"}, {Name: "a"}}}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.tpl); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: err = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestUpdatePartialPatch(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), Template{Name: "Notice", Body: "old body"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newBody := "new body"
	updated, err := svc.Update(context.Background(), created.ID, Patch{Body: &newBody})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Body != "new body" {
		t.Fatalf("Body = %q", updated.Body)
	}
	if updated.Name != "Notice" {
		t.Fatalf("Name changed: %q", updated.Name)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("CreatedAt changed on update")
	}
}

func TestUpdateEmptyPatchIsNoop(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), Template{Name: "Notice", Body: "body"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, Patch{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatal("empty patch should not bump UpdatedAt")
	}
}

func TestUpdateRejectsInvalidResult(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), Template{Name: "Notice", Body: "body"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := ""
	if _, err := svc.Update(context.Background(), created.ID, Patch{Body: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), Template{Name: "Notice", Body: "body"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
