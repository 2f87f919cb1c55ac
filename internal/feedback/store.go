package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yshashi/InterviewHelper-sub002/internal/db"
)

// maxCommentLength caps free-text comments before they hit storage.
const maxCommentLength = 2000

// Store persists page feedback.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record saves one feedback response. Comments beyond the length cap are
// truncated rather than rejected.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.Page == "" {
		return fmt.Errorf("page is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if len(entry.Comment) > maxCommentLength {
		entry.Comment = entry.Comment[:maxCommentLength]
	}

	helpful := 0
	if entry.Helpful {
		helpful = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, page, helpful, comment)
		VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Page, helpful, entry.Comment)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}

// Summarize counts helpful and unhelpful responses for a page.
func (s *Store) Summarize(ctx context.Context, page string) (*Summary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN helpful = 1 THEN 1 END),
			COUNT(CASE WHEN helpful = 0 THEN 1 END)
		FROM feedback WHERE page = ?`, page)

	summary := &Summary{Page: page}
	if err := row.Scan(&summary.Helpful, &summary.NotHelpful); err != nil {
		return nil, fmt.Errorf("summarizing feedback: %w", err)
	}
	summary.Total = summary.Helpful + summary.NotHelpful
	return summary, nil
}
