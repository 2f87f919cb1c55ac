package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yshashi/InterviewHelper-sub002/internal/content"
)

var (
	migrateFrom string
	migrateTo   string
)

var migrateLayoutCmd = &cobra.Command{
	Use:   "migrate-layout",
	Short: "Rewrite a layout reference across all content files",
	Long: `Scans every .mdx file in the content directory and replaces one layout
reference string with another. Used when the site layout component
moves or is renamed, e.g.:

  interviewhelper migrate-layout \
    --from "../../layouts/MainLayout.astro" \
    --to "../../layouts/BaseLayout.astro"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		result, err := content.MigrateLayout(cfg.ContentDir, migrateFrom, migrateTo)
		if err != nil {
			return err
		}

		fmt.Printf("Scanned %d file(s), rewrote %d\n", result.Scanned, len(result.Rewritten))
		for _, path := range result.Rewritten {
			fmt.Printf("  ~ %s\n", path)
		}
		return nil
	},
}

func init() {
	migrateLayoutCmd.Flags().StringVar(&migrateFrom, "from", "", "layout reference to replace")
	migrateLayoutCmd.Flags().StringVar(&migrateTo, "to", "", "replacement layout reference")
	migrateLayoutCmd.MarkFlagRequired("from")
	migrateLayoutCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateLayoutCmd)
}
