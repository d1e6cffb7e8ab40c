package chat

import (
	"context"
	"testing"
)

func TestQueryEchoesAndPersists(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	docID := "doc-1"
	answer, err := svc.Query(context.Background(), "guest:u1", "what is a lease?", &docID)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if answer != "Echoing your query: 'what is a lease?'" {
		t.Fatalf("answer = %q", answer)
	}

	msgs := repo.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].UserID != "guest:u1" || msgs[0].Message != "what is a lease?" {
		t.Fatalf("stored message = %+v", msgs[0])
	}
	if msgs[0].DocumentID == nil || *msgs[0].DocumentID != "doc-1" {
		t.Fatalf("DocumentID = %v", msgs[0].DocumentID)
	}
}
