package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"stickynotes/notes/client/ui"

	"github.com/spf13/cobra"
)

// editChanges holds the flags the user actually set.
type editChanges struct {
	Title   *string
	Content *string
	Color   *string
}

var (
	editTitle   string
	editContent string
	editColor   string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change the title, content or color of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var changes editChanges
		if cmd.Flags().Changed("title") {
			changes.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			changes.Content = &editContent
		}
		if cmd.Flags().Changed("color") {
			changes.Color = &editColor
		}

		if err := runEdit(context.Background(), newApp(), os.Stdout, args[0], changes); err != nil {
			fatal("Error editing note", err)
		}
	},
}

func runEdit(ctx context.Context, app *ui.App, w io.Writer, id string, changes editChanges) error {
	if changes.Title == nil && changes.Content == nil && changes.Color == nil {
		return fmt.Errorf("nothing to change: pass --title, --content or --color")
	}

	if err := app.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", app.State().Error, err)
	}
	if err := app.OpenEdit(id); err != nil {
		return fmt.Errorf("note %s: %w", id, err)
	}

	form := app.Form()
	if changes.Title != nil {
		form.Title = *changes.Title
	}
	if changes.Content != nil {
		form.Content = *changes.Content
	}
	if changes.Color != nil {
		hex, err := resolveColor(*changes.Color)
		if err != nil {
			return err
		}
		form.SetColor(hex)
	}

	if err := app.Submit(ctx); err != nil {
		if msg := app.State().Error; msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	fmt.Fprintf(w, "Note updated: %s\n", id)
	return nil
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().StringVar(&editColor, "color", "", "New color: name or hex from the palette")
}
