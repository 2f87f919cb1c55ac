package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yshashi/InterviewHelper-sub002/internal/db"
)

// ErrNotFound is returned when no question set exists for a topic.
var ErrNotFound = errors.New("question set not found")

// Store provides question set and attempt persistence.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Upsert stores the question set for a topic. Questions without an ID are
// numbered sequentially from 1. When the stored questions are identical the
// row is left untouched and false is returned.
func (s *Store) Upsert(ctx context.Context, topic string, questions []Question, sourceFile string) (bool, error) {
	if topic == "" {
		return false, fmt.Errorf("topic is required")
	}
	if len(questions) == 0 {
		return false, fmt.Errorf("question set for %s is empty", topic)
	}

	for i := range questions {
		if questions[i].ID == 0 {
			questions[i].ID = i + 1
		}
		if questions[i].SourceFile == "" {
			questions[i].SourceFile = sourceFile
		}
	}

	data, err := json.Marshal(questions)
	if err != nil {
		return false, fmt.Errorf("marshalling questions: %w", err)
	}

	var existing string
	err = s.db.QueryRowContext(ctx,
		"SELECT questions FROM question_sets WHERE topic = ?", topic).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO question_sets (topic, questions, question_count, source_file)
			VALUES (?, ?, ?, ?)`,
			topic, string(data), len(questions), sourceFile)
		if err != nil {
			return false, fmt.Errorf("inserting question set: %w", err)
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("checking existing question set: %w", err)
	}

	// Data unchanged: skip the write, matching the importer's
	// "no update needed" behaviour.
	if existing == string(data) {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE question_sets
		SET questions = ?, question_count = ?, source_file = ?, updated_at = datetime('now')
		WHERE topic = ?`,
		string(data), len(questions), sourceFile, topic)
	if err != nil {
		return false, fmt.Errorf("updating question set: %w", err)
	}
	return true, nil
}

// Get retrieves the question set for a topic.
func (s *Store) Get(ctx context.Context, topic string) (*QuestionSet, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT topic, questions, source_file, created_at, updated_at
		FROM question_sets WHERE topic = ?`, topic)

	var (
		set                  QuestionSet
		questionsJSON        string
		createdAt, updatedAt string
	)
	err := row.Scan(&set.Topic, &questionsJSON, &set.SourceFile, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying question set: %w", err)
	}

	if err := json.Unmarshal([]byte(questionsJSON), &set.Questions); err != nil {
		return nil, fmt.Errorf("parsing stored questions: %w", err)
	}
	set.CreatedAt = parseTime(createdAt)
	set.UpdatedAt = parseTime(updatedAt)

	return &set, nil
}

// Topics returns all topic slugs with stored question sets.
func (s *Store) Topics(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT topic FROM question_sets ORDER BY topic")
	if err != nil {
		return nil, fmt.Errorf("querying topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// RecordAttempt stores a scored submission. A UUID is generated when the
// attempt has no ID.
func (s *Store) RecordAttempt(ctx context.Context, attempt Attempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.New().String()
	}

	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("marshalling answers: %w", err)
	}

	var userID sql.NullString
	if attempt.UserID != "" {
		userID = sql.NullString{String: attempt.UserID, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quiz_attempts (id, topic, user_id, score, total, answers)
		VALUES (?, ?, ?, ?, ?, ?)`,
		attempt.ID, attempt.Topic, userID, attempt.Score, attempt.Total, string(answers))
	if err != nil {
		return fmt.Errorf("inserting attempt: %w", err)
	}
	return nil
}

// Leaderboard returns the best attempts for a topic, highest score first.
// Usernames are attached for attempts by known users.
func (s *Store) Leaderboard(ctx context.Context, topic string, limit int) ([]Attempt, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.topic, COALESCE(a.user_id, ''), COALESCE(u.username, ''),
		       a.score, a.total, a.created_at
		FROM quiz_attempts a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.topic = ?
		ORDER BY a.score DESC, a.created_at ASC
		LIMIT ?`, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var (
			a         Attempt
			createdAt string
		)
		if err := rows.Scan(&a.ID, &a.Topic, &a.UserID, &a.Username, &a.Score, &a.Total, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt = parseTime(createdAt)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Grade scores the submitted answers against the set's correct letters.
func Grade(set *QuestionSet, answers map[int]string) (int, []AnswerResult) {
	score := 0
	results := make([]AnswerResult, 0, len(set.Questions))

	for _, q := range set.Questions {
		given := answers[q.ID]
		correct := given != "" && given == q.CorrectAnswer
		if correct {
			score++
		}
		results = append(results, AnswerResult{
			QuestionID:    q.ID,
			Given:         given,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
		})
	}

	return score, results
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(time.DateTime, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
