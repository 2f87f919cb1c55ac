package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yshashi/InterviewHelper-sub002/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static site from the content directory",
	Long:  `Renders every markdown article into a static HTML site with navigation, client-side search, quiz and feedback widgets, and the account pages.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	generator := site.NewGenerator(cfg.ContentDir, outputDir, cfg.SiteName)
	generator.Include = cfg.Include
	generator.Exclude = cfg.Exclude

	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d content pages)\n", outputDir, pageCount)
	fmt.Println("Run `interviewhelper serve` to serve it with the quiz and account APIs.")
	return nil
}
