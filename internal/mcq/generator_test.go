package mcq

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/yshashi/InterviewHelper-sub002/internal/content"
	"github.com/yshashi/InterviewHelper-sub002/internal/llm"
	"github.com/yshashi/InterviewHelper-sub002/internal/quiz"
)

// fakeProvider returns a canned completion.
type fakeProvider struct {
	content string
	calls   int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	return &llm.CompletionResponse{Content: f.content, InputTokens: 100, OutputTokens: 50}, nil
}

const validResponse = `[
  {
    "question": "What does ng serve do?",
    "options": {"A": "Builds for production", "B": "Starts a dev server", "C": "Runs tests", "D": "Lints the project"},
    "correct_answer": "B"
  },
  {
    "question": "Which file configures the CLI?",
    "options": {"A": "angular.json", "B": "package.json", "C": "tsconfig.json", "D": "cli.config.js"},
    "correct_answer": "A"
  }
]`

func testDoc() *content.Document {
	return &content.Document{
		RelPath: "angular/angular-cli.mdx",
		Slug:    "angular_angular-cli",
		Body:    "# Angular CLI\n\nThe CLI scaffolds and serves Angular apps.",
	}
}

func TestGenerateWritesQuestionFile(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeProvider{content: validResponse}
	gen := NewGenerator(fake, "gpt-4o", 2, dir)

	result, err := gen.Generate(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Topic != "angular_angular-cli" {
		t.Errorf("Topic = %q, want angular_angular-cli", result.Topic)
	}
	if len(result.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(result.Questions))
	}
	for i, q := range result.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d, want %d", i, q.ID, i+1)
		}
		if q.SourceFile != "angular/angular-cli.mdx" {
			t.Errorf("question %d SourceFile = %q", i, q.SourceFile)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "angular_angular-cli.json"))
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	var stored []quiz.Question
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("parsing output file: %v", err)
	}
	if len(stored) != 2 {
		t.Errorf("file has %d questions, want 2", len(stored))
	}
}

func TestGenerateStripsCodeFences(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeProvider{content: "```json\n" + validResponse + "\n```"}
	gen := NewGenerator(fake, "gpt-4o", 2, dir)

	result, err := gen.Generate(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(result.Questions))
	}
}

func TestGenerateSkipsRewriteOfIdenticalFile(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeProvider{content: validResponse}
	gen := NewGenerator(fake, "gpt-4o", 2, dir)
	ctx := context.Background()

	if _, err := gen.Generate(ctx, testDoc()); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "angular_angular-cli.json")
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := gen.Generate(ctx, testDoc()); err != nil {
		t.Fatal(err)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("identical output rewrote the file")
	}
}

func TestGenerateRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "I cannot answer that."},
		{"empty array", "[]"},
		{"missing option", `[{"question": "q", "options": {"A": "x", "B": "y", "C": "z"}, "correct_answer": "A"}]`},
		{"bad correct answer", `[{"question": "q", "options": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "E"}]`},
		{"empty question", `[{"question": " ", "options": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "A"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(&fakeProvider{content: tt.content}, "gpt-4o", 2, t.TempDir())
			if _, err := gen.Generate(context.Background(), testDoc()); err == nil {
				t.Error("Generate() succeeded, want error")
			}
		})
	}
}
