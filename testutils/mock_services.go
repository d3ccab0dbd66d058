package testutils

import (
	"context"

	"stickynotes/notes/models"

	"github.com/stretchr/testify/mock"
)

// MockNoteService mocks services.NoteServiceInterface for testing
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockNoteService) GetNotes(ctx context.Context) ([]models.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteService) GetNoteById(ctx context.Context, id string) (models.Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockNoteService) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockNoteService) DeleteNote(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNoteRepository mocks repository.NoteRepository for testing
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPublisher records published messages.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(subject string, data []byte) error {
	args := m.Called(subject, data)
	return args.Error(0)
}
