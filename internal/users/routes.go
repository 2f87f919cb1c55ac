package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yshashi/InterviewHelper-sub002/internal/auth"
)

// RegisterRoutes mounts account and profile endpoints on the given router.
// The paths mirror the API the site's client scripts call: /auth/me for the
// current user and /users/{id} for profile edits.
func RegisterRoutes(r chi.Router, store *Store, issuer *auth.TokenIssuer) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handleRegister(store, issuer))
		r.Post("/login", handleLogin(store, issuer))

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(issuer))
			r.Get("/me", handleMe(store))
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(auth.Middleware(issuer))
		r.Patch("/{id}", handleUpdate(store))
	})
}

// sessionResponse is returned by register and login.
type sessionResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

func handleRegister(store *Store, issuer *auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := store.Create(r.Context(), User{
			Name:     req.Name,
			Username: req.Username,
			Email:    req.Email,
		}, req.Password)
		if err != nil {
			if errors.Is(err, ErrDuplicate) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		token, err := issuer.Issue(user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not issue token")
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{User: user, AccessToken: token})
	}
}

func handleLogin(store *Store, issuer *auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := store.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, ErrBadCredentials) {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		token, err := issuer.Issue(user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not issue token")
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{User: user, AccessToken: token})
	}
}

func handleMe(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := store.GetByID(r.Context(), auth.UserID(r.Context()))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "unknown user")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func handleUpdate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id != auth.UserID(r.Context()) {
			writeError(w, http.StatusForbidden, "cannot edit another user's profile")
			return
		}

		var params UpdateParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := store.Update(r.Context(), id, params)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, ErrDuplicate):
				writeError(w, http.StatusConflict, err.Error())
			default:
				writeError(w, http.StatusBadRequest, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
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
