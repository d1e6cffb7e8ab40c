// Package summaries is a placeholder summarization endpoint. It stores
// the submitted text alongside a truncated preview standing in for a
// real model-backed summary.
package summaries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// previewRunes is how much of the original text the stub summary keeps.
const previewRunes = 50

// ErrEmptyText indicates nothing usable was submitted.
var ErrEmptyText = errors.New("text is empty")

type Summary struct {
	ID             string
	UserID         string
	OriginalText   string
	SummarizedText string
	CreatedAt      time.Time
}

type Repo interface {
	Create(ctx context.Context, s Summary) error
}

type Service struct {
	Repo Repo

	now func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Summarize stores the text and returns the stub summary.
func (s *Service) Summarize(ctx context.Context, userID, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	summary := stubSummary(text)
	rec := Summary{
		ID:             uuid.NewString(),
		UserID:         userID,
		OriginalText:   text,
		SummarizedText: summary,
		CreatedAt:      s.now(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("store summary: %w", err)
	}
	return summary, nil
}

func stubSummary(text string) string {
	preview := text
	if runes := []rune(text); len(runes) > previewRunes {
		preview = string(runes[:previewRunes])
	}
	return fmt.Sprintf("This is a dummy summary of the first 50 chars: %s...", preview)
}
