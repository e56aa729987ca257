package command

// root.go defines the root command for the justco CLI.
// global flags are set up here.

import (
	"fmt"
	"os"

	c "justco/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var (
	apiURL     string // Global flag for API server URL
	adminToken string // bearer token for admin commands
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "justco",
	Short: "justco - JustCo chat command line interface",
	Long: `justco talks to a running JustCo chat backend. Use it to:
- Create, join, list and delete chat rooms
- Post messages and read a room's history
- Mint admin tokens for room deletion

Use "justco [command] --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("JUSTCO_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:10000"
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL")
	rootCmd.PersistentFlags().StringVar(&adminToken, "token", os.Getenv("JUSTCO_ADMIN_TOKEN"), "admin bearer token")
}

// GetClient returns an HTTP client for the configured server.
func GetClient() *c.HTTPClient {
	httpClient := c.NewHTTPClient(apiURL)
	if adminToken != "" {
		httpClient.SetToken(adminToken)
	}
	return httpClient
}
