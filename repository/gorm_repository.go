package repository

import (
	"context"
	"errors"
	"time"

	"stickynotes/notes/database"
	"stickynotes/notes/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNoteRepository stores notes in a SQL database through GORM.
type GormNoteRepository struct {
	db  *database.Database
	now func() time.Time
}

func NewGormNoteRepository(db *database.Database) *GormNoteRepository {
	return &GormNoteRepository{db: db, now: time.Now}
}

// Postgres timestamps carry microsecond precision.
func (r *GormNoteRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func (r *GormNoteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	now := r.timestamp()
	note.ID = uuid.New().String()
	note.CreatedAt = now
	note.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(&note).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (r *GormNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	notes := []models.Note{}
	err := r.db.DB.WithContext(ctx).
		Order("updated_at desc").
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	var note models.Note
	if err := r.db.DB.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

func (r *GormNoteRepository) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	var note models.Note
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&note, "id = ?", id).Error; err != nil {
			return err
		}

		updatedAt := nextUpdatedAt(note.UpdatedAt.UTC(), r.timestamp(), time.Microsecond)
		fields := update.Fields()
		fields["updated_at"] = updatedAt
		if err := tx.Model(&note).Updates(fields).Error; err != nil {
			return err
		}

		update.Apply(&note)
		note.UpdatedAt = updatedAt
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

func (r *GormNoteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.Note{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
