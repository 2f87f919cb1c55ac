package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// APIKeyCredentials stores an API key for a provider.
type APIKeyCredentials struct {
	APIKey string `json:"api_key,omitempty"`
}

// Credentials holds stored credentials for question-generation providers.
type Credentials struct {
	OpenAI *APIKeyCredentials `json:"openai,omitempty"`
}

// CredentialPath returns the path to the credentials file
// (~/.interviewhelper/credentials.json).
func CredentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".interviewhelper", "credentials.json"), nil
}

// LoadCredentials reads credentials from the credentials file.
// Returns empty credentials if the file doesn't exist.
func LoadCredentials() (*Credentials, error) {
	path, err := CredentialPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	return &creds, nil
}

// SaveCredentials writes credentials with restricted permissions.
func SaveCredentials(creds *Credentials) error {
	path, err := CredentialPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling credentials: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// GetAPIKey returns the API key for the given provider. It checks the
// environment variable first, then falls back to stored credentials.
func GetAPIKey(provider string) string {
	switch provider {
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return key
		}
	}

	creds, err := LoadCredentials()
	if err != nil {
		return ""
	}

	switch provider {
	case "openai":
		if creds.OpenAI != nil {
			return creds.OpenAI.APIKey
		}
	}

	return ""
}
