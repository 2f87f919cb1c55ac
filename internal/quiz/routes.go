package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yshashi/InterviewHelper-sub002/internal/auth"
)

// RegisterRoutes mounts quiz endpoints under /api/quiz. Attempts are
// recorded anonymously unless a valid bearer token is supplied.
func RegisterRoutes(r chi.Router, store *Store, issuer *auth.TokenIssuer) {
	r.Route("/api/quiz", func(r chi.Router) {
		r.Get("/", handleTopics(store))
		r.Get("/{topic}", handleGet(store))
		r.Get("/{topic}/leaderboard", handleLeaderboard(store))

		r.Group(func(r chi.Router) {
			if issuer != nil {
				r.Use(auth.Optional(issuer))
			}
			r.Post("/{topic}/attempts", handleSubmit(store))
		})
	})
}

func handleTopics(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := store.Topics(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if topics == nil {
			topics = []string{}
		}
		writeJSON(w, http.StatusOK, map[string][]string{"topics": topics})
	}
}

// quizResponse is the payload for GET /api/quiz/{topic}.
type quizResponse struct {
	Topic     string           `json:"topic"`
	Questions []PublicQuestion `json:"questions"`
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := chi.URLParam(r, "topic")

		set, err := store.Get(r.Context(), topic)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "no quiz for topic "+topic)
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		questions := ShuffleWithLimit(set.Questions, limit)
		public := make([]PublicQuestion, len(questions))
		for i, q := range questions {
			public[i] = q.Public()
		}

		writeJSON(w, http.StatusOK, quizResponse{Topic: set.Topic, Questions: public})
	}
}

// submitRequest is the body for POST /api/quiz/{topic}/attempts. Answer keys
// are question IDs, values are option letters.
type submitRequest struct {
	Answers map[int]string `json:"answers"`
}

// submitResponse reports the grading of a submission.
type submitResponse struct {
	Topic   string         `json:"topic"`
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Results []AnswerResult `json:"results"`
}

func handleSubmit(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := chi.URLParam(r, "topic")

		set, err := store.Get(r.Context(), topic)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "no quiz for topic "+topic)
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Answers) == 0 {
			writeError(w, http.StatusBadRequest, "answers are required")
			return
		}

		score, results := Grade(set, req.Answers)

		attempt := Attempt{
			Topic:   topic,
			UserID:  auth.UserID(r.Context()),
			Score:   score,
			Total:   len(set.Questions),
			Answers: req.Answers,
		}
		if err := store.RecordAttempt(r.Context(), attempt); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, submitResponse{
			Topic:   topic,
			Score:   score,
			Total:   len(set.Questions),
			Results: results,
		})
	}
}

func handleLeaderboard(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := chi.URLParam(r, "topic")

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		attempts, err := store.Leaderboard(r.Context(), topic, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if attempts == nil {
			attempts = []Attempt{}
		}
		writeJSON(w, http.StatusOK, map[string][]Attempt{"attempts": attempts})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
