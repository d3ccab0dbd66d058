package repository

import (
	"context"
	"errors"
	"time"

	"stickynotes/notes/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// noteDocument is the shape of a note inside the collection.
type noteDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Color     string             `bson:"color"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d noteDocument) toNote() models.Note {
	return models.Note{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		Color:     d.Color,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// MongoNoteRepository stores notes as documents in a MongoDB collection.
type MongoNoteRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoNoteRepository(collection *mongo.Collection) *MongoNoteRepository {
	return &MongoNoteRepository{collection: collection, now: time.Now}
}

// BSON dates carry millisecond precision.
func (r *MongoNoteRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func (r *MongoNoteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	now := r.timestamp()
	doc := noteDocument{
		ID:        primitive.NewObjectID(),
		Title:     note.Title,
		Content:   note.Content,
		Color:     note.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return models.Note{}, err
	}
	return doc.toNote(), nil
}

func (r *MongoNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "updatedAt", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []noteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, doc.toNote())
	}
	return notes, nil
}

func (r *MongoNoteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Note{}, ErrNotFound
	}

	var doc noteDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return models.Note{}, mapMongoError(err)
	}
	return doc.toNote(), nil
}

func (r *MongoNoteRepository) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Note{}, ErrNotFound
	}

	// A pipeline update lets updatedAt move at least one millisecond past
	// the stored value. User text is wrapped in $literal so a leading "$"
	// is not read as a field path.
	set := bson.D{}
	if update.Title != nil {
		set = append(set, bson.E{Key: "title", Value: literal(*update.Title)})
	}
	if update.Content != nil {
		set = append(set, bson.E{Key: "content", Value: literal(*update.Content)})
	}
	if update.Color != nil {
		set = append(set, bson.E{Key: "color", Value: literal(*update.Color)})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: bson.D{{Key: "$max", Value: bson.A{
		r.timestamp(),
		bson.D{{Key: "$add", Value: bson.A{"$updatedAt", 1}}},
	}}}})
	pipeline := mongo.Pipeline{{{Key: "$set", Value: set}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc noteDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, pipeline, opts).Decode(&doc)
	if err != nil {
		return models.Note{}, mapMongoError(err)
	}
	return doc.toNote(), nil
}

func (r *MongoNoteRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func literal(v string) bson.D {
	return bson.D{{Key: "$literal", Value: v}}
}

func mapMongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
