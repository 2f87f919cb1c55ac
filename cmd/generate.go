package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yshashi/InterviewHelper-sub002/internal/content"
	"github.com/yshashi/InterviewHelper-sub002/internal/mcq"
	"github.com/yshashi/InterviewHelper-sub002/internal/progress"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate quiz questions from the content articles",
	Long: `Reads every article in the content directory and uses the configured
LLM provider to generate a multiple-choice question set per topic.
Question files are written to the questions directory and picked up by
` + "`interviewhelper serve`" + ` on startup.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "only generate questions for this topic slug")
	generateCmd.Flags().Int("questions", 0, "questions per topic (overrides config)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("creating LLM provider: %w", err)
	}

	docs, err := content.Walk(content.CorpusConfig{
		RootDir: cfg.ContentDir,
		Include: cfg.Include,
		Exclude: cfg.Exclude,
	})
	if err != nil {
		return fmt.Errorf("walking content dir: %w", err)
	}

	if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
		var filtered []*content.Document
		for _, doc := range docs {
			if doc.Slug == topic {
				filtered = append(filtered, doc)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no content found for topic %q", topic)
		}
		docs = filtered
	}
	if len(docs) == 0 {
		return fmt.Errorf("no content files found in %s", cfg.ContentDir)
	}

	perTopic := cfg.QuestionsPerTopic
	if n, _ := cmd.Flags().GetInt("questions"); n > 0 {
		perTopic = n
	}

	generator := mcq.NewGenerator(provider, cfg.Model, perTopic, cfg.QuestionsDir)

	reporter := progress.NewReporter()
	reporter.Start(len(docs), "Generating questions")

	var generated, failed, inputTokens, outputTokens int
	for i, doc := range docs {
		reporter.Update(i+1, doc.Slug)

		result, err := generator.Generate(cmd.Context(), doc)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "\nWarning: %v\n", err)
			continue
		}
		generated++
		inputTokens += result.InputTokens
		outputTokens += result.OutputTokens
	}
	reporter.Finish()

	fmt.Printf("Generated question sets for %d topic(s) in %s", generated, cfg.QuestionsDir)
	if failed > 0 {
		fmt.Printf(" (%d failed)", failed)
	}
	fmt.Println()
	if verbose {
		fmt.Printf("Tokens used: %d in, %d out\n", inputTokens, outputTokens)
	}
	return nil
}
