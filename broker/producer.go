package broker

import (
	"fmt"

	"stickynotes/notes/models"
)

type Publisher interface {
	Publish(subject string, data []byte) error
}

// Broker is a publish/subscribe transport for note events.
type Broker interface {
	Publisher
	Subscriber
	Close()
}

// PublishEvent serializes the event and publishes it on its type's subject.
func PublishEvent(p Publisher, event models.NoteEvent) error {
	data, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize %s event: %w", event.Type, err)
	}
	return p.Publish(SubjectFor(EventType(event.Type)), data)
}
