package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"stickynotes/notes/client/ui"

	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
	createColor   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCreate(context.Background(), newApp(), os.Stdout, createTitle, createContent, createColor); err != nil {
			fatal("Error creating note", err)
		}
	},
}

func runCreate(ctx context.Context, app *ui.App, w io.Writer, title, content, color string) error {
	app.OpenCreate()
	form := app.Form()
	form.Title = title
	form.Content = content
	if color != "" {
		hex, err := resolveColor(color)
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

	created := app.State().Notes[0]
	fmt.Fprintf(w, "Note created: %s\n", created.ID)
	return nil
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Note title (required)")
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "Note content (required)")
	createCmd.Flags().StringVar(&createColor, "color", "", "Note color: name or hex from the palette (default blue)")
}
