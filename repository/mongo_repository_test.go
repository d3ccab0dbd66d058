package repository

import (
	"context"
	"testing"
	"time"

	"stickynotes/notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func noteDoc(id primitive.ObjectID, title, content, color string, at time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "content", Value: content},
		{Key: "color", Value: color},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(at)},
		{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(at)},
	}
}

func TestMongoNoteRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		repo.now = func() time.Time { return at.Add(589 * time.Microsecond) }
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		note, err := repo.Create(context.Background(), models.Note{Title: "Groceries", Content: "Milk", Color: "#10B981"})
		require.NoError(mt, err)
		assert.Len(mt, note.ID, 24)
		assert.Equal(mt, "Groceries", note.Title)
		assert.Equal(mt, at, note.CreatedAt)
		assert.Equal(mt, note.CreatedAt, note.UpdatedAt)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, noteDoc(second, "newer", "b", "#EF4444", at.Add(time.Minute))),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch, noteDoc(first, "older", "a", "#3B82F6", at)),
		)

		notes, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, notes, 2)
		assert.Equal(mt, second.Hex(), notes[0].ID)
		assert.Equal(mt, "older", notes[1].Title)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		notes, err := repo.List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, notes)
		assert.Empty(mt, notes)
	})

	mt.Run("get", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		id := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, noteDoc(id, "Title", "Body", "#F97316", at)))

		note, err := repo.Get(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), note.ID)
		assert.Equal(mt, "#F97316", note.Color)
		assert.Equal(mt, at, note.CreatedAt)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Get(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("malformed ids", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		ctx := context.Background()

		_, err := repo.Get(ctx, "000")
		assert.ErrorIs(mt, err, ErrNotFound)
		_, err = repo.Update(ctx, "000", models.NoteUpdate{Title: models.StringPtr("x")})
		assert.ErrorIs(mt, err, ErrNotFound)
		assert.ErrorIs(mt, repo.Delete(ctx, "000"), ErrNotFound)
	})

	mt.Run("update", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: noteDoc(id, "Renamed", "Body", "#3B82F6", at)},
		})

		note, err := repo.Update(context.Background(), id.Hex(), models.NoteUpdate{Title: models.StringPtr("Renamed")})
		require.NoError(mt, err)
		assert.Equal(mt, "Renamed", note.Title)

		// updatedAt is computed server-side so it always moves past the stored value.
		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		sent := started.Command.Lookup("update")
		assert.Equal(mt, bson.TypeArray, sent.Type)
		assert.Contains(mt, sent.String(), `"$max"`)
		assert.Contains(mt, sent.String(), `"$literal"`)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), models.NoteUpdate{})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})

		assert.NoError(mt, repo.Delete(context.Background(), primitive.NewObjectID().Hex()))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		assert.ErrorIs(mt, repo.Delete(context.Background(), primitive.NewObjectID().Hex()), ErrNotFound)
	})

	mt.Run("server error", func(mt *mtest.T) {
		repo := NewMongoNoteRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "duplicate key",
			Name:    "DuplicateKey",
		}))

		_, err := repo.Create(context.Background(), models.Note{Title: "x", Content: "y"})
		assert.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrNotFound)
	})
}
