package command

// root.go defines the root command for the moviehub CLI and its global flags.

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"moviehub/cmd/cli/command/client"
)

var (
	apiURL  string        // API server URL
	token   string        // bearer token for write commands
	timeout time.Duration // per command
)

var rootCmd = &cobra.Command{
	Use:   "moviehub",
	Short: "moviehub - catalog command line interface",
	Long: `moviehub talks to the moviehub catalog API. Use it to:
- browse the landing page and filter movies
- manage genres, cinemas and actors
- create and delete movies, with an optional poster

Tokens are issued elsewhere; pass one with --token or MOVIEHUB_TOKEN for
commands that write.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("MOVIEHUB_API", "http://localhost:8080"), "API server URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("MOVIEHUB_TOKEN"), "bearer token for write commands")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(genreCmd, cinemaCmd, actorCmd, movieCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newClient returns an API client carrying the token, when one is set.
func newClient() *client.HTTPClient {
	c := client.NewHTTPClient(apiURL)
	if token != "" {
		c.SetToken(token)
	}
	return c
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func success(w io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(w, "✓ "+format+"\n", args...)
}

func totalLine(w io.Writer, shown int, total int64) {
	color.New(color.FgHiBlack).Fprintf(w, "showing %d of %d\n", shown, total)
}
