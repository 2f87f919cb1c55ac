package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "interviewhelper",
	Short: "Static interview prep site with quizzes, feedback and accounts",
	Long: `InterviewHelper turns a directory of markdown interview Q&A articles
into a static website with client-side search, per-page quizzes,
reader feedback and user accounts. Quiz questions are generated from
the articles themselves using an LLM.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".interviewhelper.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
