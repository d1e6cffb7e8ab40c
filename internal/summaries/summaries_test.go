package summaries

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSummarizeTruncatesPreview(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	long := strings.Repeat("a", 80)
	summary, err := svc.Summarize(context.Background(), "guest:u1", long)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := "This is a dummy summary of the first 50 chars: " + strings.Repeat("a", 50) + "..."
	if summary != want {
		t.Fatalf("summary = %q", summary)
	}

	entries := repo.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].OriginalText != long || entries[0].SummarizedText != summary {
		t.Fatalf("stored = %+v", entries[0])
	}
}

func TestSummarizeShortTextKeptWhole(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	summary, err := svc.Summarize(context.Background(), "guest:u1", "short text")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary != "This is a dummy summary of the first 50 chars: short text..." {
		t.Fatalf("summary = %q", summary)
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Summarize(context.Background(), "guest:u1", "   "); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
}
