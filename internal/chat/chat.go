// Package chat is a placeholder conversational endpoint. It echoes the
// question back and records the exchange; a real assistant can replace
// the service without touching the route contract.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         string
	UserID     string
	DocumentID *string
	Message    string
	CreatedAt  time.Time
}

type Repo interface {
	Create(ctx context.Context, msg Message) error
}

type Service struct {
	Repo Repo

	now func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Query records the message and returns a canned echo answer.
func (s *Service) Query(ctx context.Context, userID, query string, documentID *string) (string, error) {
	msg := Message{
		ID:         uuid.NewString(),
		UserID:     userID,
		DocumentID: documentID,
		Message:    query,
		CreatedAt:  s.now(),
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("store chat message: %w", err)
	}
	return fmt.Sprintf("Echoing your query: '%s'", query), nil
}
