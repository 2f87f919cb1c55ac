package feedback

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts feedback endpoints under /api/feedback.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/feedback", func(r chi.Router) {
		r.Post("/", handleSubmit(store))
		r.Get("/summary", handleSummary(store))
	})
}

// submitRequest is the body for POST /api/feedback.
type submitRequest struct {
	Page    string `json:"page"`
	Helpful *bool  `json:"helpful"`
	Comment string `json:"comment"`
}

func handleSubmit(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Page == "" {
			writeError(w, http.StatusBadRequest, "page is required")
			return
		}
		if req.Helpful == nil {
			writeError(w, http.StatusBadRequest, "helpful is required")
			return
		}

		entry := Entry{Page: req.Page, Helpful: *req.Helpful, Comment: req.Comment}
		if err := store.Record(r.Context(), entry); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		// The widget fires and forgets; 202 acknowledges receipt without
		// promising anything about how the response is used.
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
	}
}

func handleSummary(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "" {
			writeError(w, http.StatusBadRequest, "page query parameter is required")
			return
		}

		summary, err := store.Summarize(r.Context(), page)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, summary)
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
