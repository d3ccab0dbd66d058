package models

import (
	"encoding/json"
	"time"
)

// NoteEvent describes a change to a note. Note is omitted for deletions.
type NoteEvent struct {
	Type      string    `json:"type"`
	NoteID    string    `json:"noteId"`
	Note      *Note     `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewNoteEvent(eventType string, noteID string, note *Note) NoteEvent {
	return NoteEvent{
		Type:      eventType,
		NoteID:    noteID,
		Note:      note,
		Timestamp: time.Now().UTC(),
	}
}

func (e *NoteEvent) FromJSON(data []byte) error {
	return json.Unmarshal(data, e)
}

func (e *NoteEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
