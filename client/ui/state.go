// Package ui holds the note board's client-side state: a pure reducer over
// explicit actions, the edit form rules and a controller that drives both
// against the API.
package ui

import "stickynotes/notes/models"

// View is what the board shows for a given state.
type View int

const (
	ViewLoading View = iota
	ViewEmpty
	ViewNotes
)

// Operation names the API call an error came from.
type Operation int

const (
	OpLoad Operation = iota
	OpCreate
	OpUpdate
	OpDelete
)

// Message returns the text shown to the user when the operation fails.
func (op Operation) Message() string {
	switch op {
	case OpLoad:
		return "Failed to load notes. Make sure the backend server is running."
	case OpCreate:
		return "Failed to create note"
	case OpUpdate:
		return "Failed to update note"
	case OpDelete:
		return "Failed to delete note"
	default:
		return "Something went wrong"
	}
}

type State struct {
	Notes   []models.Note
	Loading bool
	// Error is empty when there is nothing to report.
	Error string
	// CanRetry is set when the failed operation was the list load.
	CanRetry bool
	FormOpen bool
	// Editing is the note the open form edits; nil when creating.
	Editing *models.Note
}

// InitialState is the board before its first load completes.
func InitialState() State {
	return State{Notes: []models.Note{}, Loading: true}
}

func (s State) View() View {
	switch {
	case s.Loading:
		return ViewLoading
	case len(s.Notes) == 0:
		return ViewEmpty
	default:
		return ViewNotes
	}
}

type Action interface {
	isAction()
}

type (
	LoadStarted struct{}
	Loaded      struct{ Notes []models.Note }
	Created     struct{ Note models.Note }
	Updated     struct{ Note models.Note }
	Deleted     struct{ ID string }
	Errored     struct{ Op Operation }
	FormOpened  struct{ Editing *models.Note }
	FormClosed  struct{}
)

func (LoadStarted) isAction() {}
func (Loaded) isAction()      {}
func (Created) isAction()     {}
func (Updated) isAction()     {}
func (Deleted) isAction()     {}
func (Errored) isAction()     {}
func (FormOpened) isAction()  {}
func (FormClosed) isAction()  {}

// Reduce returns the state after applying action. It never mutates s.
func Reduce(s State, action Action) State {
	next := s
	switch a := action.(type) {
	case LoadStarted:
		next.Loading = true
		next.Error = ""
		next.CanRetry = false

	case Loaded:
		next.Loading = false
		next.Notes = append([]models.Note{}, a.Notes...)

	case Created:
		notes := make([]models.Note, 0, len(s.Notes)+1)
		notes = append(notes, a.Note)
		next.Notes = append(notes, s.Notes...)
		next.FormOpen = false
		next.Editing = nil

	case Updated:
		next.Notes = make([]models.Note, len(s.Notes))
		for i, note := range s.Notes {
			if note.ID == a.Note.ID {
				note = a.Note
			}
			next.Notes[i] = note
		}
		next.FormOpen = false
		next.Editing = nil

	case Deleted:
		next.Notes = make([]models.Note, 0, len(s.Notes))
		for _, note := range s.Notes {
			if note.ID != a.ID {
				next.Notes = append(next.Notes, note)
			}
		}

	case Errored:
		next.Error = a.Op.Message()
		next.CanRetry = a.Op == OpLoad
		if a.Op == OpLoad {
			next.Loading = false
		}

	case FormOpened:
		next.FormOpen = true
		next.Editing = nil
		if a.Editing != nil {
			editing := *a.Editing
			next.Editing = &editing
		}

	case FormClosed:
		next.FormOpen = false
		next.Editing = nil
	}
	return next
}
