package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/yshashi/InterviewHelper-sub002/internal/auth"
	"github.com/yshashi/InterviewHelper-sub002/internal/db"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func sampleQuestions(n int) []Question {
	questions := make([]Question, n)
	for i := range questions {
		questions[i] = Question{
			Text: "What does the flag do?",
			Options: map[string]string{
				"A": "first", "B": "second", "C": "third", "D": "fourth",
			},
			CorrectAnswer: "B",
		}
	}
	return questions
}

func TestUpsertAssignsIDs(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	changed, err := store.Upsert(ctx, "angular_components", sampleQuestions(3), "angular_components.json")
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if !changed {
		t.Error("Upsert() changed = false, want true for new topic")
	}

	set, err := store.Get(ctx, "angular_components")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	for i, q := range set.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestUpsertSkipsIdenticalData(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	questions := sampleQuestions(2)

	if _, err := store.Upsert(ctx, "react_hooks", questions, "react_hooks.json"); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}

	changed, err := store.Upsert(ctx, "react_hooks", sampleQuestions(2), "react_hooks.json")
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}
	if changed {
		t.Error("Upsert() changed = true for identical data, want false")
	}
}

func TestUpsertUpdatesChangedData(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if _, err := store.Upsert(ctx, "css_grid", sampleQuestions(2), "css_grid.json"); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}

	changed, err := store.Upsert(ctx, "css_grid", sampleQuestions(3), "css_grid.json")
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}
	if !changed {
		t.Error("Upsert() changed = false for new data, want true")
	}

	set, err := store.Get(ctx, "css_grid")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(set.Questions) != 3 {
		t.Errorf("got %d questions, want 3", len(set.Questions))
	}
}

func TestUpsertRejectsEmptySet(t *testing.T) {
	store := testStore(t)

	if _, err := store.Upsert(context.Background(), "empty", nil, "empty.json"); err == nil {
		t.Error("Upsert() with no questions succeeded, want error")
	}
}

func TestGetUnknownTopic(t *testing.T) {
	store := testStore(t)

	if _, err := store.Get(context.Background(), "nope"); err != ErrNotFound {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestTopics(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, topic := range []string{"zsh", "angular_basics", "node_streams"} {
		if _, err := store.Upsert(ctx, topic, sampleQuestions(1), topic+".json"); err != nil {
			t.Fatalf("Upsert(%s) error = %v", topic, err)
		}
	}

	topics, err := store.Topics(ctx)
	if err != nil {
		t.Fatalf("Topics() error = %v", err)
	}
	want := []string{"angular_basics", "node_streams", "zsh"}
	if len(topics) != len(want) {
		t.Fatalf("got %d topics, want %d", len(topics), len(want))
	}
	for i, topic := range topics {
		if topic != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topic, want[i])
		}
	}
}

func TestGrade(t *testing.T) {
	set := &QuestionSet{
		Topic: "git",
		Questions: []Question{
			{ID: 1, CorrectAnswer: "A"},
			{ID: 2, CorrectAnswer: "C"},
			{ID: 3, CorrectAnswer: "D"},
		},
	}

	score, results := Grade(set, map[int]string{1: "A", 2: "B"})
	if score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !results[0].Correct {
		t.Error("question 1 graded wrong, want correct")
	}
	if results[1].Correct {
		t.Error("question 2 graded correct, want wrong")
	}
	if results[2].Given != "" || results[2].Correct {
		t.Errorf("unanswered question graded as %+v", results[2])
	}
}

func TestShuffleWithLimit(t *testing.T) {
	questions := make([]Question, 20)
	for i := range questions {
		questions[i] = Question{ID: i + 1}
	}

	limited := ShuffleWithLimit(questions, 5)
	if len(limited) != 5 {
		t.Errorf("got %d questions, want 5", len(limited))
	}

	full := ShuffleWithLimit(questions, 0)
	if len(full) != len(questions) {
		t.Errorf("got %d questions, want %d", len(full), len(questions))
	}

	seen := map[int]bool{}
	for _, q := range full {
		seen[q.ID] = true
	}
	if len(seen) != len(questions) {
		t.Errorf("shuffle lost questions: %d unique, want %d", len(seen), len(questions))
	}

	if &questions[0] == &full[0] {
		t.Error("shuffle returned the input slice, want a copy")
	}
}

func TestImportDir(t *testing.T) {
	store := testStore(t)
	dir := t.TempDir()

	writeSet := func(name string, questions []Question) {
		t.Helper()
		data, err := json.Marshal(questions)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	writeSet("angular_cli.json", sampleQuestions(2))
	writeSet("docker_compose.json", sampleQuestions(3))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := ImportDir(context.Background(), store, dir)
	if err != nil {
		t.Fatalf("ImportDir() error = %v", err)
	}
	if result.Files != 2 {
		t.Errorf("Files = %d, want 2", result.Files)
	}
	if len(result.Imported) != 2 {
		t.Errorf("Imported = %v, want 2 topics", result.Imported)
	}

	// Second run with unchanged files should skip everything.
	result, err = ImportDir(context.Background(), store, dir)
	if err != nil {
		t.Fatalf("second ImportDir() error = %v", err)
	}
	if len(result.Skipped) != 2 {
		t.Errorf("Skipped = %v, want 2 topics", result.Skipped)
	}
	if len(result.Imported) != 0 {
		t.Errorf("Imported = %v, want none", result.Imported)
	}
}

func testRouter(t *testing.T, store *Store) chi.Router {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("quiz-test-secret", 0)
	if err != nil {
		t.Fatal(err)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, store, issuer)
	return r
}

func TestGetQuizWithheldAnswers(t *testing.T) {
	store := testStore(t)
	if _, err := store.Upsert(context.Background(), "typescript", sampleQuestions(4), "typescript.json"); err != nil {
		t.Fatal(err)
	}
	r := testRouter(t, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/quiz/typescript?limit=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Topic     string           `json:"topic"`
		Questions []map[string]any `json:"questions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Topic != "typescript" {
		t.Errorf("topic = %q, want typescript", resp.Topic)
	}
	if len(resp.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(resp.Questions))
	}
	for _, q := range resp.Questions {
		if _, ok := q["correct_answer"]; ok {
			t.Error("response exposes correct_answer")
		}
	}
}

func TestGetQuizUnknownTopic(t *testing.T) {
	r := testRouter(t, testStore(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/quiz/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSubmitAttempt(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	questions := []Question{
		{Text: "q1", Options: map[string]string{"A": "x", "B": "y"}, CorrectAnswer: "A"},
		{Text: "q2", Options: map[string]string{"A": "x", "B": "y"}, CorrectAnswer: "B"},
	}
	if _, err := store.Upsert(ctx, "sql_joins", questions, "sql_joins.json"); err != nil {
		t.Fatal(err)
	}
	r := testRouter(t, store)

	body, _ := json.Marshal(map[string]any{
		"answers": map[string]string{"1": "A", "2": "A"},
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/quiz/sql_joins/attempts", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp submitResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Score != 1 || resp.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", resp.Score, resp.Total)
	}

	attempts, err := store.Leaderboard(ctx, "sql_joins", 0)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(attempts))
	}
	if attempts[0].Score != 1 {
		t.Errorf("recorded score = %d, want 1", attempts[0].Score)
	}
	if attempts[0].UserID != "" {
		t.Errorf("anonymous attempt has user ID %q", attempts[0].UserID)
	}
}

func TestSubmitAttemptRequiresAnswers(t *testing.T) {
	store := testStore(t)
	if _, err := store.Upsert(context.Background(), "linux", sampleQuestions(1), "linux.json"); err != nil {
		t.Fatal(err)
	}
	r := testRouter(t, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/quiz/linux/attempts", bytes.NewReader([]byte(`{}`))))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLeaderboardOrder(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if _, err := store.Upsert(ctx, "http_caching", sampleQuestions(5), "http_caching.json"); err != nil {
		t.Fatal(err)
	}
	for _, score := range []int{2, 5, 3} {
		err := store.RecordAttempt(ctx, Attempt{Topic: "http_caching", Score: score, Total: 5})
		if err != nil {
			t.Fatalf("RecordAttempt() error = %v", err)
		}
	}

	attempts, err := store.Leaderboard(ctx, "http_caching", 2)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	if attempts[0].Score != 5 || attempts[1].Score != 3 {
		t.Errorf("scores = %d, %d; want 5, 3", attempts[0].Score, attempts[1].Score)
	}
}
