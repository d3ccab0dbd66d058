package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"stickynotes/notes/models"

	"github.com/google/uuid"
)

type memoryEntry struct {
	note models.Note
	seq  uint64
}

// MemoryNoteRepository keeps notes in process memory. Safe for concurrent use.
type MemoryNoteRepository struct {
	mu    sync.RWMutex
	notes map[string]memoryEntry
	seq   uint64
	now   func() time.Time
}

type MemoryOption func(*MemoryNoteRepository)

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) MemoryOption {
	return func(r *MemoryNoteRepository) {
		r.now = now
	}
}

func NewMemoryNoteRepository(opts ...MemoryOption) *MemoryNoteRepository {
	r := &MemoryNoteRepository{
		notes: make(map[string]memoryEntry),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryNoteRepository) Create(_ context.Context, note models.Note) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	note.ID = uuid.New().String()
	note.CreatedAt = now
	note.UpdatedAt = now

	r.seq++
	r.notes[note.ID] = memoryEntry{note: note, seq: r.seq}
	return note, nil
}

func (r *MemoryNoteRepository) List(_ context.Context) ([]models.Note, error) {
	r.mu.RLock()
	entries := make([]memoryEntry, 0, len(r.notes))
	for _, entry := range r.notes {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.note.UpdatedAt.Equal(b.note.UpdatedAt) {
			return a.note.UpdatedAt.After(b.note.UpdatedAt)
		}
		if !a.note.CreatedAt.Equal(b.note.CreatedAt) {
			return a.note.CreatedAt.After(b.note.CreatedAt)
		}
		return a.seq > b.seq
	})

	notes := make([]models.Note, len(entries))
	for i, entry := range entries {
		notes[i] = entry.note
	}
	return notes, nil
}

func (r *MemoryNoteRepository) Get(_ context.Context, id string) (models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.notes[id]
	if !ok {
		return models.Note{}, ErrNotFound
	}
	return entry.note, nil
}

func (r *MemoryNoteRepository) Update(_ context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.notes[id]
	if !ok {
		return models.Note{}, ErrNotFound
	}

	update.Apply(&entry.note)
	entry.note.UpdatedAt = nextUpdatedAt(entry.note.UpdatedAt, r.now().UTC(), time.Nanosecond)
	r.notes[id] = entry
	return entry.note, nil
}

func (r *MemoryNoteRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return ErrNotFound
	}
	delete(r.notes, id)
	return nil
}
