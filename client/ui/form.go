package ui

import (
	"strings"

	"stickynotes/notes/models"
)

// Palette is the fixed set of note colors. The first entry is the default.
var Palette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#F97316",
}

// Form holds the fields a user can edit. The note id is never one of them.
type Form struct {
	Title   string
	Content string
	Color   string
}

// NewForm returns an empty form, or one pre-filled from editing.
func NewForm(editing *models.Note) Form {
	if editing == nil {
		return Form{Color: Palette[0]}
	}
	return Form{
		Title:   editing.Title,
		Content: editing.Content,
		Color:   editing.Color,
	}
}

// CanSubmit requires a title and content that are not blank.
func (f Form) CanSubmit() bool {
	return strings.TrimSpace(f.Title) != "" && strings.TrimSpace(f.Content) != ""
}

// SetColor selects a palette color. Colors outside the palette are ignored.
func (f *Form) SetColor(color string) bool {
	for _, c := range Palette {
		if c == color {
			f.Color = color
			return true
		}
	}
	return false
}

func (f Form) Input() models.NoteInput {
	return models.NoteInput{
		Title:   strings.TrimSpace(f.Title),
		Content: strings.TrimSpace(f.Content),
		Color:   f.Color,
	}
}

// Update carries every field the form owns.
func (f Form) Update() models.NoteUpdate {
	input := f.Input()
	return models.NoteUpdate{
		Title:   models.StringPtr(input.Title),
		Content: models.StringPtr(input.Content),
		Color:   models.StringPtr(input.Color),
	}
}
