package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yshashi/InterviewHelper-sub002/internal/auth"
	"github.com/yshashi/InterviewHelper-sub002/internal/db"
	"github.com/yshashi/InterviewHelper-sub002/internal/feedback"
	"github.com/yshashi/InterviewHelper-sub002/internal/quiz"
	"github.com/yshashi/InterviewHelper-sub002/internal/users"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the generated static site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the generated site together with the account, quiz and
// feedback APIs the site's widgets call.
type Server struct {
	cfg        Config
	db         *db.DB
	issuer     *auth.TokenIssuer
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all feature routes registered.
func New(cfg Config, database *db.DB, issuer *auth.TokenIssuer) *Server {
	s := &Server{
		cfg:    cfg,
		db:     database,
		issuer: issuer,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	users.RegisterRoutes(r, users.NewStore(s.db), s.issuer)
	quiz.RegisterRoutes(r, quiz.NewStore(s.db), s.issuer)
	feedback.RegisterRoutes(r, feedback.NewStore(s.db))

	if s.cfg.SiteDir != "" {
		r.NotFound(staticHandler(s.cfg.SiteDir))
	}

	return r
}

// staticHandler serves the generated site. Extensionless paths like /login
// fall back to their .html page so the client-side links stay clean.
func staticHandler(siteDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(siteDir))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}

		reqPath := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
		if reqPath == "" || reqPath == "." {
			fileServer.ServeHTTP(w, r)
			return
		}

		full := filepath.Join(siteDir, filepath.FromSlash(reqPath))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		if _, err := os.Stat(full + ".html"); err == nil {
			r.URL.Path = "/" + reqPath + ".html"
			fileServer.ServeHTTP(w, r)
			return
		}

		http.NotFound(w, r)
	}
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("interviewhelper server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
