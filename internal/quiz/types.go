package quiz

import "time"

// Question is a single multiple-choice question. Options are keyed by the
// letters A through D and exactly one letter is correct.
type Question struct {
	ID            int               `json:"question_id"`
	Text          string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	SourceFile    string            `json:"source_file,omitempty"`
}

// PublicQuestion is the client-facing view of a question, with the correct
// answer withheld.
type PublicQuestion struct {
	ID      int               `json:"question_id"`
	Text    string            `json:"question"`
	Options map[string]string `json:"options"`
}

// Public strips the correct answer from a question.
func (q Question) Public() PublicQuestion {
	return PublicQuestion{ID: q.ID, Text: q.Text, Options: q.Options}
}

// QuestionSet is the full set of questions for one topic slug.
type QuestionSet struct {
	Topic      string     `json:"topic"`
	Questions  []Question `json:"questions"`
	SourceFile string     `json:"source_file,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Attempt is one scored quiz submission.
type Attempt struct {
	ID        string         `json:"id"`
	Topic     string         `json:"topic"`
	UserID    string         `json:"user_id,omitempty"`
	Username  string         `json:"username,omitempty"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	Answers   map[int]string `json:"answers,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// AnswerResult reports the grading of a single question in an attempt.
type AnswerResult struct {
	QuestionID    int    `json:"question_id"`
	Given         string `json:"given"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}
