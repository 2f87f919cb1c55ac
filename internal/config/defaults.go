package config

// DefaultExcludes are glob patterns excluded from the content corpus by default.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"dist/**",
	"build/**",
	".next/**",
	"*.draft.mdx",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:          "Interview Helper",
		ContentDir:        "pages",
		OutputDir:         "site",
		DataDir:           ".interviewhelper",
		QuestionsDir:      "questions",
		Port:              8080,
		TokenTTLHours:     24,
		Provider:          ProviderOpenAI,
		Model:             "gpt-4o",
		QuestionsPerTopic: 10,
		MaxRPM:            20,
		Include:           []string{"**/*.mdx", "**/*.md"},
		Exclude:           DefaultExcludes,
	}
}
