package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

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

func TestRecordAndSummarize(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	entries := []Entry{
		{Page: "/angular/angular-cli", Helpful: true},
		{Page: "/angular/angular-cli", Helpful: true, Comment: "clear examples"},
		{Page: "/angular/angular-cli", Helpful: false},
		{Page: "/react/hooks", Helpful: true},
	}
	for _, e := range entries {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	summary, err := store.Summarize(ctx, "/angular/angular-cli")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.Helpful != 2 {
		t.Errorf("Helpful = %d, want 2", summary.Helpful)
	}
	if summary.NotHelpful != 1 {
		t.Errorf("NotHelpful = %d, want 1", summary.NotHelpful)
	}
	if summary.Total != 3 {
		t.Errorf("Total = %d, want 3", summary.Total)
	}
}

func TestSummarizeEmptyPage(t *testing.T) {
	store := testStore(t)

	summary, err := store.Summarize(context.Background(), "/never-visited")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("Total = %d, want 0", summary.Total)
	}
}

func TestRecordRequiresPage(t *testing.T) {
	store := testStore(t)

	if err := store.Record(context.Background(), Entry{Helpful: true}); err == nil {
		t.Error("Record() without page succeeded, want error")
	}
}

func TestRecordTruncatesLongComment(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	long := strings.Repeat("x", maxCommentLength+500)
	err := store.Record(ctx, Entry{ID: "trunc", Page: "/p", Helpful: false, Comment: long})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	var stored string
	err = store.db.QueryRowContext(ctx, "SELECT comment FROM feedback WHERE id = ?", "trunc").Scan(&stored)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != maxCommentLength {
		t.Errorf("stored comment length = %d, want %d", len(stored), maxCommentLength)
	}
}

func testRouter(t *testing.T) (chi.Router, *Store) {
	t.Helper()
	store := testStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return r, store
}

func TestSubmitFeedback(t *testing.T) {
	r, store := testRouter(t)

	body := `{"page": "/git/rebase", "helpful": true, "comment": "helped a lot"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewReader([]byte(body))))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusAccepted, rec.Body.String())
	}

	summary, err := store.Summarize(context.Background(), "/git/rebase")
	if err != nil {
		t.Fatal(err)
	}
	if summary.Helpful != 1 {
		t.Errorf("Helpful = %d, want 1", summary.Helpful)
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	r, _ := testRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing page", `{"helpful": true}`},
		{"missing helpful", `{"page": "/x"}`},
		{"invalid json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewReader([]byte(tt.body))))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestSummaryEndpoint(t *testing.T) {
	r, store := testRouter(t)
	ctx := context.Background()

	for _, helpful := range []bool{true, false, false} {
		if err := store.Record(ctx, Entry{Page: "/css/flexbox", Helpful: helpful}); err != nil {
			t.Fatal(err)
		}
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feedback/summary?page=/css/flexbox", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var summary Summary
	if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if summary.Helpful != 1 || summary.NotHelpful != 2 {
		t.Errorf("summary = %+v, want 1 helpful, 2 not helpful", summary)
	}
}

func TestSummaryRequiresPage(t *testing.T) {
	r, _ := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feedback/summary", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
