package broker

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSBroker publishes and subscribes through a NATS server, so several API
// instances can share note events.
type NATSBroker struct {
	conn *nats.Conn
}

func NewNATSBroker(url string) (*NATSBroker, error) {
	conn, err := nats.Connect(url,
		nats.Name("notes-api"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	log.Printf("Connected to NATS at %s", conn.ConnectedUrl())
	return &NATSBroker{conn: conn}, nil
}

func (b *NATSBroker) Publish(subject string, data []byte) error {
	return b.conn.Publish(subject, data)
}

type natsConsumer struct {
	sub      *nats.Subscription
	mu       sync.Mutex
	closed   bool
	messages chan Message
}

func (c *natsConsumer) GetMessageChannel() <-chan Message {
	return c.messages
}

func (c *natsConsumer) deliver(msg *nats.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.messages <- Message{Subject: msg.Subject, Data: msg.Data}:
	default:
		log.Printf("Warning: NATS consumer buffer is full, dropping message on %s", msg.Subject)
	}
}

func (c *natsConsumer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if err := c.sub.Unsubscribe(); err != nil {
		log.Printf("Failed to unsubscribe from %s: %v", c.sub.Subject, err)
	}
	close(c.messages)
}

func (b *NATSBroker) Subscribe(subject string) (Consumer, error) {
	consumer := &natsConsumer{messages: make(chan Message, consumerBufferSize)}
	sub, err := b.conn.Subscribe(subject, consumer.deliver)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	consumer.sub = sub
	return consumer, nil
}

// Close flushes pending publishes and closes the connection.
func (b *NATSBroker) Close() {
	if err := b.conn.Drain(); err != nil {
		log.Printf("Failed to drain NATS connection: %v", err)
		b.conn.Close()
	}
}
