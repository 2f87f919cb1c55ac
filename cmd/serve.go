package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yshashi/InterviewHelper-sub002/internal/auth"
	"github.com/yshashi/InterviewHelper-sub002/internal/db"
	"github.com/yshashi/InterviewHelper-sub002/internal/quiz"
	"github.com/yshashi/InterviewHelper-sub002/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated site together with its APIs",
	Long:  `Starts the HTTP server: the generated static site plus the account, quiz and feedback APIs its widgets call. Question files found in the questions directory are imported on startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.JWTSecret == "" {
			return fmt.Errorf("jwt_secret is required to serve: set it in %s or via INTERVIEWHELPER_JWT_SECRET", cfgFile)
		}

		issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
		if err != nil {
			return fmt.Errorf("creating token issuer: %w", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "interviewhelper.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		// Pick up question sets generated since the last run.
		if _, statErr := os.Stat(cfg.QuestionsDir); statErr == nil {
			result, impErr := quiz.ImportDir(cmd.Context(), quiz.NewStore(database), cfg.QuestionsDir)
			if impErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: importing questions: %v\n", impErr)
			} else if len(result.Imported) > 0 {
				fmt.Fprintf(os.Stderr, "Imported %d question set(s) from %s\n", len(result.Imported), cfg.QuestionsDir)
			}
		}

		port := servePort
		if port == 0 {
			port = cfg.Port
		}

		srv := server.New(server.Config{
			Port:     port,
			SiteDir:  cfg.OutputDir,
			AllowAll: cfg.CORS.AllowAll,
		}, database, issuer)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "interviewhelper v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Site: %s\n", cfg.OutputDir)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (defaults to port from config)")
	rootCmd.AddCommand(serveCmd)
}
