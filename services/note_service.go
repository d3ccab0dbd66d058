package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"stickynotes/notes/broker"
	"stickynotes/notes/models"
	"stickynotes/notes/repository"

	"github.com/go-playground/validator/v10"
)

type NoteServiceInterface interface {
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	GetNotes(ctx context.Context) ([]models.Note, error)
	GetNoteById(ctx context.Context, id string) (models.Note, error)
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type NoteService struct {
	repo      repository.NoteRepository
	publisher broker.Publisher
	validate  *validator.Validate
}

// NewNoteService builds the service. publisher may be nil, in which case no
// change events are emitted.
func NewNoteService(repo repository.NoteRepository, publisher broker.Publisher) *NoteService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &NoteService{
		repo:      repo,
		publisher: publisher,
		validate:  validate,
	}
}

func (s *NoteService) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	if err := s.validateInput(input); err != nil {
		return models.Note{}, err
	}

	note, err := s.repo.Create(ctx, input.ToNote())
	if err != nil {
		return models.Note{}, err
	}

	s.publish(broker.NoteCreated, note.ID, &note)
	return note, nil
}

func (s *NoteService) GetNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (s *NoteService) GetNoteById(ctx context.Context, id string) (models.Note, error) {
	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Note{}, translateRepositoryError(err)
	}
	return note, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	note, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return models.Note{}, translateRepositoryError(err)
	}

	s.publish(broker.NoteUpdated, note.ID, &note)
	return note, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepositoryError(err)
	}

	s.publish(broker.NoteDeleted, id, nil)
	return nil
}

func (s *NoteService) validateInput(input models.NoteInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fe.Field()+" is required")
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, ", "))
}

// publish emits a change event. Failures are logged and never affect the
// result of the operation that triggered them.
func (s *NoteService) publish(eventType broker.EventType, noteID string, note *models.Note) {
	if s.publisher == nil {
		return
	}
	event := models.NewNoteEvent(string(eventType), noteID, note)
	if err := broker.PublishEvent(s.publisher, event); err != nil {
		log.Printf("Failed to publish %s event for note %s: %v", eventType, noteID, err)
	}
}

func translateRepositoryError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	return err
}
