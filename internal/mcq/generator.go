package mcq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yshashi/InterviewHelper-sub002/internal/content"
	"github.com/yshashi/InterviewHelper-sub002/internal/llm"
	"github.com/yshashi/InterviewHelper-sub002/internal/quiz"
)

// Generator produces multiple-choice question sets from content documents.
type Generator struct {
	Provider          string
	Model             string
	QuestionsPerTopic int
	OutputDir         string

	provider llm.Provider
}

// NewGenerator creates a Generator writing question files to outputDir.
func NewGenerator(provider llm.Provider, model string, questionsPerTopic int, outputDir string) *Generator {
	if questionsPerTopic <= 0 {
		questionsPerTopic = 10
	}
	return &Generator{
		Model:             model,
		QuestionsPerTopic: questionsPerTopic,
		OutputDir:         outputDir,
		provider:          provider,
	}
}

// GenerateResult reports the outcome of generating questions for one document.
type GenerateResult struct {
	Topic        string
	Path         string
	Questions    []quiz.Question
	InputTokens  int
	OutputTokens int
}

// Generate produces a question set for one document and writes it to
// {OutputDir}/{slug}.json.
func (g *Generator) Generate(ctx context.Context, doc *content.Document) (*GenerateResult, error) {
	prompt := fmt.Sprintf(questionPromptTemplate, g.QuestionsPerTopic, doc.Title(), doc.Body)

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model: g.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("generating questions for %s: %w", doc.Slug, err)
	}

	questions, err := parseQuestions(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing questions for %s: %w", doc.Slug, err)
	}

	for i := range questions {
		questions[i].ID = i + 1
		questions[i].SourceFile = doc.RelPath
		if err := validateQuestion(questions[i]); err != nil {
			return nil, fmt.Errorf("question %d for %s: %w", i+1, doc.Slug, err)
		}
	}

	path, err := g.write(doc.Slug, questions)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Topic:        doc.Slug,
		Path:         path,
		Questions:    questions,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
	}, nil
}

// write saves a question set as {OutputDir}/{slug}.json. The write is skipped
// when the file already holds identical data.
func (g *Generator) write(slug string, questions []quiz.Question) (string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling questions: %w", err)
	}

	path := filepath.Join(g.OutputDir, slug+".json")
	if existing, err := os.ReadFile(path); err == nil && string(existing) == string(data) {
		return path, nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// parseQuestions parses an LLM JSON response into questions. Markdown code
// fences around the payload are stripped first.
func parseQuestions(raw string) ([]quiz.Question, error) {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "```") {
		lines := strings.Split(raw, "\n")
		if len(lines) >= 2 {
			start := 1
			end := len(lines)
			if strings.TrimSpace(lines[end-1]) == "```" {
				end--
			}
			raw = strings.Join(lines[start:end], "\n")
		}
	}

	var questions []quiz.Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("json parse: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("response contains no questions")
	}
	return questions, nil
}

// validateQuestion checks that a generated question is answerable.
func validateQuestion(q quiz.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("has %d options, want 4", len(q.Options))
	}
	for _, letter := range []string{"A", "B", "C", "D"} {
		if _, ok := q.Options[letter]; !ok {
			return fmt.Errorf("missing option %s", letter)
		}
	}
	if _, ok := q.Options[q.CorrectAnswer]; !ok {
		return fmt.Errorf("correct_answer %q is not an option", q.CorrectAnswer)
	}
	return nil
}
