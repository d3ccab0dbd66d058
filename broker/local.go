package broker

import (
	"log"
	"sync"
)

const consumerBufferSize = 256

// LocalBroker delivers messages between goroutines of a single process.
// It is used when no NATS server is configured.
type LocalBroker struct {
	mu        sync.RWMutex
	consumers map[int]*localConsumer
	nextID    int
}

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{consumers: make(map[int]*localConsumer)}
}

type localConsumer struct {
	broker   *LocalBroker
	id       int
	pattern  string
	messages chan Message
}

func (c *localConsumer) GetMessageChannel() <-chan Message {
	return c.messages
}

func (c *localConsumer) Close() {
	c.broker.remove(c.id)
}

// Publish never blocks; a consumer whose buffer is full misses the message.
func (b *LocalBroker) Publish(subject string, data []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, consumer := range b.consumers {
		if !SubjectMatches(consumer.pattern, subject) {
			continue
		}
		select {
		case consumer.messages <- Message{Subject: subject, Data: data}:
		default:
			log.Printf("Warning: consumer %d buffer is full, dropping message on %s", consumer.id, subject)
		}
	}
	return nil
}

func (b *LocalBroker) Subscribe(subject string) (Consumer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	consumer := &localConsumer{
		broker:   b,
		id:       b.nextID,
		pattern:  subject,
		messages: make(chan Message, consumerBufferSize),
	}
	b.consumers[consumer.id] = consumer
	return consumer, nil
}

// remove closes the consumer's channel. Sends happen under the read lock,
// so closing under the write lock cannot race with a delivery.
func (b *LocalBroker) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if consumer, ok := b.consumers[id]; ok {
		delete(b.consumers, id)
		close(consumer.messages)
	}
}

// Close ends every open subscription.
func (b *LocalBroker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, consumer := range b.consumers {
		delete(b.consumers, id)
		close(consumer.messages)
	}
}
