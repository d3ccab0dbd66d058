package models

import (
	"encoding/json"
	"time"
)

// DefaultColor is applied when a note is created without a color.
const DefaultColor = "#3B82F6"

type Note struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Color     string    `gorm:"type:varchar(32);not null" json:"color"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;index" json:"updatedAt"`
}

func (n *Note) FromJSON(data []byte) error {
	return json.Unmarshal(data, n)
}

func (n *Note) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// NoteInput is the body accepted when creating a note.
type NoteInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Color   string `json:"color,omitempty"`
}

// ToNote builds an unsaved note, filling in the default color.
func (in NoteInput) ToNote() Note {
	color := in.Color
	if color == "" {
		color = DefaultColor
	}
	return Note{
		Title:   in.Title,
		Content: in.Content,
		Color:   color,
	}
}

// NoteUpdate is a partial update. Nil fields are left untouched; empty
// strings are applied as given.
type NoteUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Color   *string `json:"color,omitempty"`
}

func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Color == nil
}

// Apply copies the supplied fields onto n.
func (u NoteUpdate) Apply(n *Note) {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Color != nil {
		n.Color = *u.Color
	}
}

// Fields returns the supplied fields keyed by column name.
func (u NoteUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Content != nil {
		fields["content"] = *u.Content
	}
	if u.Color != nil {
		fields["color"] = *u.Color
	}
	return fields
}

// StringPtr is a helper for building NoteUpdate values.
func StringPtr(s string) *string {
	return &s
}
