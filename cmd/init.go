package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yshashi/InterviewHelper-sub002/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize interviewhelper configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure interviewhelper for your content and generates a .interviewhelper.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
