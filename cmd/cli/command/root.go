package command

// root.go defines the root command for the bookhub CLI and its global flags.

import (
	"fmt"
	"os"

	"bookhub/cmd/cli/authentication"
	"bookhub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:3003"

type options struct {
	apiURL string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bookhub",
		Short: "bookhub - command line client for the bookhub API",
		Long: `bookhub talks to the bookhub API server. Use it to:
- Register and log in
- Add books to the catalog and list them
- Review books and manage your reviews
- Keep a watchlist of books

The session token is kept in the OS keyring between runs.`,
		SilenceUsage: true,
	}

	apiDefault := defaultAPIURL
	if env := os.Getenv("BOOKHUB_API"); env != "" {
		apiDefault = env
	}
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", apiDefault, "API server URL")

	rootCmd.AddCommand(
		newAuthCmd(opts),
		newBookCmd(opts),
		newReviewCmd(opts),
		newWatchlistCmd(opts),
	)
	return rootCmd
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// authedClient returns a client carrying the token stored by the last login.
func (o *options) authedClient() (*client.HTTPClient, error) {
	creds, err := authentication.GetCredentials()
	if err != nil {
		return nil, err
	}
	c := client.NewHTTPClient(o.apiURL)
	c.SetToken(creds.Token)
	return c, nil
}

var successColor = color.New(color.FgGreen)

func success(cmd *cobra.Command, format string, args ...any) {
	successColor.Fprintf(cmd.OutOrStdout(), "✓ "+format+"\n", args...)
}
