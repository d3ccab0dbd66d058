package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"stickynotes/notes/client/ui"
	"stickynotes/notes/models"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note. You are asked to confirm unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		confirm := promptConfirmer(os.Stdin, os.Stdout)
		if deleteYes {
			confirm = func(models.Note) bool { return true }
		}
		if err := runDelete(context.Background(), newApp(), os.Stdout, args[0], confirm); err != nil {
			fatal("Error deleting note", err)
		}
	},
}

// promptConfirmer asks on out and reads a y/N answer from in.
func promptConfirmer(in io.Reader, out io.Writer) ui.Confirmer {
	reader := bufio.NewReader(in)
	return func(note models.Note) bool {
		fmt.Fprintf(out, "Are you sure you want to delete %q? [y/N] ", note.Title)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}

func runDelete(ctx context.Context, app *ui.App, w io.Writer, id string, confirm ui.Confirmer) error {
	if err := app.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", app.State().Error, err)
	}

	deleted, err := app.Delete(ctx, id, confirm)
	if err != nil {
		if msg := app.State().Error; msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return fmt.Errorf("note %s: %w", id, err)
	}
	if !deleted {
		fmt.Fprintln(w, "Cancelled")
		return nil
	}
	fmt.Fprintf(w, "Note deleted: %s\n", id)
	return nil
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
