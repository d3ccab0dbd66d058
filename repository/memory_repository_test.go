package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"stickynotes/notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryNoteRepository_CRUD(t *testing.T) {
	repo := NewMemoryNoteRepository(WithClock(tickingClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))))
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Note{Title: "Call mom", Content: "Sunday", Color: "#8B5CF6"})
	require.NoError(t, err)
	assert.Len(t, created.ID, 36)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	updated, err := repo.Update(ctx, created.ID, models.NoteUpdate{Content: models.StringPtr("Saturday")})
	require.NoError(t, err)
	assert.Equal(t, "Call mom", updated.Title)
	assert.Equal(t, "Saturday", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryNoteRepository_NotFound(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(ctx, "000", models.NoteUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "000"), ErrNotFound)
}

func TestMemoryNoteRepository_ListOrder(t *testing.T) {
	// A frozen clock leaves only insertion order to break ties.
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryNoteRepository(WithClock(func() time.Time { return frozen }))
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, _ := repo.Create(ctx, models.Note{Title: "a", Content: "a"})
	b, _ := repo.Create(ctx, models.Note{Title: "b", Content: "b"})
	c, _ := repo.Create(ctx, models.Note{Title: "c", Content: "c"})

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, ids(notes))
}

func TestMemoryNoteRepository_UpdateAdvancesWithFrozenClock(t *testing.T) {
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryNoteRepository(WithClock(func() time.Time { return frozen }))
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Note{Title: "a", Content: "a"})
	require.NoError(t, err)

	first, err := repo.Update(ctx, created.ID, models.NoteUpdate{})
	require.NoError(t, err)
	assert.True(t, first.UpdatedAt.After(created.UpdatedAt))

	second, err := repo.Update(ctx, created.ID, models.NoteUpdate{Title: models.StringPtr("b")})
	require.NoError(t, err)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, frozen, second.CreatedAt)
}

func TestMemoryNoteRepository_ListReturnsCopies(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, models.Note{Title: "original", Content: "x"})
	notes, _ := repo.List(ctx)
	notes[0].Title = "mutated"

	stored, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)
}

func TestMemoryNoteRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryNoteRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, models.Note{Title: "t", Content: "c"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 50)

	seen := make(map[string]bool)
	for _, n := range notes {
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
}
