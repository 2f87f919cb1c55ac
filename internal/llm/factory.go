package llm

import (
	"fmt"

	"github.com/yshashi/InterviewHelper-sub002/internal/auth"
)

// NewProvider creates a completion provider for the given provider type.
// The API key comes from the environment or the stored credentials file.
func NewProvider(providerType string, model string) (Provider, error) {
	switch providerType {
	case "openai":
		apiKey := auth.GetAPIKey("openai")
		if apiKey == "" {
			return nil, fmt.Errorf("no OpenAI API key found: set OPENAI_API_KEY or run 'interviewhelper auth set openai'")
		}
		return NewOpenAIProvider(apiKey, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
