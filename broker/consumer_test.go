package broker

import (
	"testing"
	"time"

	"stickynotes/notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, consumer Consumer) Message {
	t.Helper()
	select {
	case msg, ok := <-consumer.GetMessageChannel():
		require.True(t, ok, "channel closed")
		return msg
	case <-time.After(1 * time.Second):
		t.Fatal("Timed out waiting for message")
		return Message{}
	}
}

func assertNoMessage(t *testing.T, consumer Consumer) {
	t.Helper()
	select {
	case msg := <-consumer.GetMessageChannel():
		t.Fatalf("Unexpected message: %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLocalBroker_PublishSubscribe(t *testing.T) {
	b := NewLocalBroker()
	defer b.Close()

	all, err := b.Subscribe(NoteEventsSubject)
	require.NoError(t, err)
	deletes, err := b.Subscribe(SubjectFor(NoteDeleted))
	require.NoError(t, err)

	require.NoError(t, b.Publish(SubjectFor(NoteCreated), []byte("created")))

	msg := receive(t, all)
	assert.Equal(t, "events.note.created", msg.Subject)
	assert.Equal(t, "created", string(msg.Data))
	assertNoMessage(t, deletes)

	require.NoError(t, b.Publish(SubjectFor(NoteDeleted), []byte("deleted")))
	assert.Equal(t, "deleted", string(receive(t, all).Data))
	assert.Equal(t, "deleted", string(receive(t, deletes).Data))
}

func TestLocalBroker_ConsumerClose(t *testing.T) {
	b := NewLocalBroker()
	consumer, err := b.Subscribe(NoteEventsSubject)
	require.NoError(t, err)

	consumer.Close()
	_, ok := <-consumer.GetMessageChannel()
	assert.False(t, ok)

	// Publishing after the consumer is gone is a no-op, and a second close is safe.
	assert.NoError(t, b.Publish(SubjectFor(NoteCreated), []byte("x")))
	consumer.Close()
	b.Close()
}

func TestLocalBroker_FullBufferDropsMessages(t *testing.T) {
	b := NewLocalBroker()
	defer b.Close()

	consumer, err := b.Subscribe(NoteEventsSubject)
	require.NoError(t, err)

	for i := 0; i < consumerBufferSize+10; i++ {
		require.NoError(t, b.Publish(SubjectFor(NoteUpdated), []byte("u")))
	}
	assert.Len(t, consumer.GetMessageChannel(), consumerBufferSize)
}

func TestPublishEvent(t *testing.T) {
	b := NewLocalBroker()
	defer b.Close()

	consumer, err := b.Subscribe(NoteEventsSubject)
	require.NoError(t, err)

	note := models.Note{ID: "abc", Title: "Title", Content: "Body", Color: models.DefaultColor}
	require.NoError(t, PublishEvent(b, models.NewNoteEvent(string(NoteUpdated), note.ID, &note)))

	msg := receive(t, consumer)
	assert.Equal(t, SubjectFor(NoteUpdated), msg.Subject)

	var event models.NoteEvent
	require.NoError(t, event.FromJSON(msg.Data))
	assert.Equal(t, "note.updated", event.Type)
	assert.Equal(t, "abc", event.NoteID)
	require.NotNil(t, event.Note)
	assert.Equal(t, "Title", event.Note.Title)
}
