package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoteToJSON(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	note := Note{
		ID:        "550e8400-e29b-41d4-a716-446655440000",
		Title:     "Groceries",
		Content:   "Milk, eggs",
		Color:     "#10B981",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}

	data, err := note.ToJSON()
	assert.NoError(t, err)

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &raw))
	assert.ElementsMatch(t,
		[]string{"id", "title", "content", "color", "createdAt", "updatedAt"},
		keys(raw))

	var result Note
	assert.NoError(t, result.FromJSON(data))
	assert.Equal(t, note, result)
}

func TestNoteInputToNote(t *testing.T) {
	t.Run("Default color", func(t *testing.T) {
		note := NoteInput{Title: "a", Content: "b"}.ToNote()
		assert.Equal(t, DefaultColor, note.Color)
		assert.Empty(t, note.ID)
	})

	t.Run("Explicit color", func(t *testing.T) {
		note := NoteInput{Title: "a", Content: "b", Color: "#EF4444"}.ToNote()
		assert.Equal(t, "#EF4444", note.Color)
	})
}

func TestNoteUpdateFromJSON(t *testing.T) {
	var update NoteUpdate
	err := json.Unmarshal([]byte(`{"title":"","id":"ignored"}`), &update)
	assert.NoError(t, err)

	assert.False(t, update.IsEmpty())
	assert.NotNil(t, update.Title)
	assert.Equal(t, "", *update.Title)
	assert.Nil(t, update.Content)
	assert.Nil(t, update.Color)
	assert.Equal(t, map[string]interface{}{"title": ""}, update.Fields())
}

func TestNoteUpdateApply(t *testing.T) {
	note := Note{ID: "1", Title: "Old", Content: "Body", Color: "#3B82F6"}
	NoteUpdate{Title: StringPtr("New")}.Apply(&note)

	assert.Equal(t, "New", note.Title)
	assert.Equal(t, "Body", note.Content)
	assert.Equal(t, "#3B82F6", note.Color)
	assert.True(t, NoteUpdate{}.IsEmpty())
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
