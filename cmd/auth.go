package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yshashi/InterviewHelper-sub002/internal/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage API credentials for question generation",
	Long: `Store and manage API credentials for the question generation provider.

Credentials are stored in ~/.interviewhelper/credentials.json and used
as a fallback when environment variables are not set.`,
}

var authOpenAICmd = &cobra.Command{
	Use:   "openai",
	Short: "Store OpenAI API key",
	Long: `Store your OpenAI API key for persistent use.

Get your API key at https://platform.openai.com/api-keys`,
	RunE: runAuthOpenAI,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which providers have stored credentials",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	RunE:  runAuthLogout,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authOpenAICmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
}

func runAuthOpenAI(cmd *cobra.Command, args []string) error {
	fmt.Print("Enter your OpenAI API key: ")
	reader := bufio.NewReader(os.Stdin)
	key, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading API key: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	creds, err := auth.LoadCredentials()
	if err != nil {
		return err
	}
	creds.OpenAI = &auth.APIKeyCredentials{APIKey: key}
	if err := auth.SaveCredentials(creds); err != nil {
		return err
	}

	path, _ := auth.CredentialPath()
	fmt.Printf("OpenAI API key saved to %s\n", path)
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	creds, err := auth.LoadCredentials()
	if err != nil {
		return err
	}

	if creds.OpenAI != nil && creds.OpenAI.APIKey != "" {
		fmt.Println("openai: API key stored")
	} else if os.Getenv("OPENAI_API_KEY") != "" {
		fmt.Println("openai: using OPENAI_API_KEY from environment")
	} else {
		fmt.Println("openai: no credentials")
	}
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	creds, err := auth.LoadCredentials()
	if err != nil {
		return err
	}
	creds.OpenAI = nil
	if err := auth.SaveCredentials(creds); err != nil {
		return err
	}
	fmt.Println("Stored credentials removed")
	return nil
}
