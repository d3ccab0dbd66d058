package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"stickynotes/notes/client"
	"stickynotes/notes/models"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runShow(context.Background(), client.New(serverURL), os.Stdout, args[0]); err != nil {
			fatal("Error reading note", err)
		}
	},
}

func runShow(ctx context.Context, c *client.Client, w io.Writer, id string) error {
	note, err := c.GetNote(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("note %s not found", id)
		}
		return err
	}
	printNote(w, note)
	return nil
}

func printNote(w io.Writer, note models.Note) {
	fmt.Fprintf(w, "%s  [%s]\n", note.Title, colorName(note.Color))
	fmt.Fprintf(w, "id: %s\n", note.ID)
	fmt.Fprintf(w, "created: %s  updated: %s\n\n",
		note.CreatedAt.Local().Format("2006-01-02 15:04"),
		note.UpdatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(w, note.Content)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
