package app

import (
	"context"
	"fmt"

	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/ports/secondary"
)

// DefaultHistoryLimit is the number of entries listed when no limit is given.
const DefaultHistoryLimit = 20

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	journal secondary.JournalRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(journal secondary.JournalRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{journal: journal}
}

// ListHistory returns the latest journal entries, newest first.
func (s *HistoryServiceImpl) ListHistory(ctx context.Context, limit int) ([]*primary.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	records, err := s.journal.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, &primary.HistoryEntry{
			RunID:     rec.RunID,
			Command:   rec.Command,
			Artifact:  rec.Artifact,
			Path:      rec.Path,
			Outcome:   rec.Outcome,
			CreatedAt: rec.CreatedAt,
		})
	}
	return entries, nil
}

var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
