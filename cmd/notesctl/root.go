package main

import (
	"fmt"
	"log/slog"
	"os"

	"stickynotes/notes/client"
	"stickynotes/notes/client/ui"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	serverURL string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Manage sticky notes from the terminal",
	Long: `notesctl talks to the notes API. It lists, creates, edits and deletes
notes, and can stream live changes made by other clients.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func defaultServerURL() string {
	if url := os.Getenv("NOTES_API_URL"); url != "" {
		return url
	}
	return client.DefaultBaseURL
}

func newApp() *ui.App {
	return ui.NewApp(client.New(serverURL), slog.Default())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", defaultServerURL(), "Notes API base URL (env NOTES_API_URL)")
}
