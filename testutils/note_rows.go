package testutils

import (
	"time"

	"stickynotes/notes/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

// MockNoteRows creates mock SQL rows for the notes table
func MockNoteRows(notes ...models.Note) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "content", "color", "created_at", "updated_at",
	})

	for _, note := range notes {
		if note.ID == "" {
			note.ID = uuid.New().String()
		}
		if note.CreatedAt.IsZero() {
			note.CreatedAt = time.Now().UTC()
		}
		if note.UpdatedAt.IsZero() {
			note.UpdatedAt = note.CreatedAt
		}
		if note.Color == "" {
			note.Color = models.DefaultColor
		}

		rows.AddRow(
			note.ID,
			note.Title,
			note.Content,
			note.Color,
			note.CreatedAt,
			note.UpdatedAt,
		)
	}

	return rows
}
