package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yshashi/InterviewHelper-sub002/internal/db"
	"github.com/yshashi/InterviewHelper-sub002/internal/quiz"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import generated question files into the quiz database",
	Long: `Loads every question file from the questions directory into the quiz
database. Topics whose stored questions already match the file are
left untouched, so re-importing is cheap.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbPath := filepath.Join(cfg.DataDir, "interviewhelper.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		result, err := quiz.ImportDir(cmd.Context(), quiz.NewStore(database), cfg.QuestionsDir)
		if err != nil {
			return err
		}

		fmt.Printf("Read %d file(s): %d imported, %d unchanged\n",
			result.Files, len(result.Imported), len(result.Skipped))
		for _, topic := range result.Imported {
			fmt.Printf("  + %s\n", topic)
		}
		if verbose {
			for _, topic := range result.Skipped {
				fmt.Printf("  = %s (unchanged)\n", topic)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
