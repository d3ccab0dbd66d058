// Package repository hides the note store behind the five operations the
// service needs, so SQL, document and in-memory stores are interchangeable.
package repository

import (
	"context"
	"errors"
	"time"

	"stickynotes/notes/models"
)

// ErrNotFound is returned when no note matches the given id. Ids that are
// malformed for a particular store are reported the same way.
var ErrNotFound = errors.New("note record not found")

type NoteRepository interface {
	// Create assigns the id and both timestamps and persists the note.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// List returns every note, most recently updated first.
	List(ctx context.Context) ([]models.Note, error)

	Get(ctx context.Context, id string) (models.Note, error)

	// Update applies the supplied fields, refreshes UpdatedAt and returns
	// the stored note.
	Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	Delete(ctx context.Context, id string) error
}

// nextUpdatedAt returns now, or prev advanced by one tick of the store's
// timestamp precision when the clock has not moved past prev.
func nextUpdatedAt(prev, now time.Time, tick time.Duration) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(tick)
}
