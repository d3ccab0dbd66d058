package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"stickynotes/notes/client/ui"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, most recently changed first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(context.Background(), newApp(), os.Stdout, listJSON); err != nil {
			fatal("Error listing notes", err)
		}
	},
}

func runList(ctx context.Context, app *ui.App, w io.Writer, asJSON bool) error {
	if err := app.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", app.State().Error, err)
	}
	state := app.State()

	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(state.Notes)
	}

	if state.View() == ui.ViewEmpty {
		fmt.Fprintln(w, "No notes yet. Create your first note with `notesctl create`.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOLOR\tTITLE\tUPDATED")
	for _, note := range state.Notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", note.ID, colorName(note.Color), note.Title, note.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
