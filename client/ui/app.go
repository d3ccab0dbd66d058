package ui

import (
	"context"
	"errors"
	"log/slog"

	"stickynotes/notes/models"
)

var (
	ErrFormClosed     = errors.New("no form is open")
	ErrFormIncomplete = errors.New("title and content are required")
	ErrUnknownNote    = errors.New("note is not on the board")
)

// NotesAPI is the subset of client.Client the board uses.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// Confirmer asks the user to confirm deleting the note.
type Confirmer func(note models.Note) bool

// App runs user intents against the API and folds the results into State.
// It is not safe for concurrent use; the UI issues one action at a time.
type App struct {
	api    NotesAPI
	logger *slog.Logger
	state  State
	form   Form
}

func NewApp(api NotesAPI, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		api:    api,
		logger: logger,
		state:  InitialState(),
	}
}

func (a *App) State() State {
	return a.state
}

// Form returns the open form for editing, or nil when none is open.
func (a *App) Form() *Form {
	if !a.state.FormOpen {
		return nil
	}
	return &a.form
}

func (a *App) dispatch(action Action) {
	a.state = Reduce(a.state, action)
}

func (a *App) fail(op Operation, err error) error {
	a.logger.Error(op.Message(), "error", err)
	a.dispatch(Errored{Op: op})
	return err
}

// Load fetches the full list. It is also the retry action after a failed load.
func (a *App) Load(ctx context.Context) error {
	a.dispatch(LoadStarted{})
	notes, err := a.api.ListNotes(ctx)
	if err != nil {
		return a.fail(OpLoad, err)
	}
	a.dispatch(Loaded{Notes: notes})
	return nil
}

func (a *App) OpenCreate() {
	a.form = NewForm(nil)
	a.dispatch(FormOpened{})
}

func (a *App) OpenEdit(id string) error {
	for _, note := range a.state.Notes {
		if note.ID == id {
			a.form = NewForm(&note)
			a.dispatch(FormOpened{Editing: &note})
			return nil
		}
	}
	return ErrUnknownNote
}

func (a *App) CancelForm() {
	a.dispatch(FormClosed{})
}

// Submit creates or updates the note from the open form. On failure the form
// stays open.
func (a *App) Submit(ctx context.Context) error {
	if !a.state.FormOpen {
		return ErrFormClosed
	}
	if !a.form.CanSubmit() {
		return ErrFormIncomplete
	}

	if editing := a.state.Editing; editing != nil {
		note, err := a.api.UpdateNote(ctx, editing.ID, a.form.Update())
		if err != nil {
			return a.fail(OpUpdate, err)
		}
		a.dispatch(Updated{Note: note})
		return nil
	}

	note, err := a.api.CreateNote(ctx, a.form.Input())
	if err != nil {
		return a.fail(OpCreate, err)
	}
	a.dispatch(Created{Note: note})
	return nil
}

// Delete removes the note after confirm approves it. It reports whether the
// API was called.
func (a *App) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	var target *models.Note
	for i := range a.state.Notes {
		if a.state.Notes[i].ID == id {
			target = &a.state.Notes[i]
			break
		}
	}
	if target == nil {
		return false, ErrUnknownNote
	}
	if confirm == nil || !confirm(*target) {
		return false, nil
	}

	if err := a.api.DeleteNote(ctx, id); err != nil {
		return true, a.fail(OpDelete, err)
	}
	a.dispatch(Deleted{ID: id})
	return true, nil
}
