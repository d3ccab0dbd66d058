package broker

// Message is a single delivery from a subscription.
type Message struct {
	Subject string
	Data    []byte
}

// Consumer delivers the messages of one subscription until closed.
type Consumer interface {
	GetMessageChannel() <-chan Message
	Close()
}

type Subscriber interface {
	// Subscribe starts delivering messages whose subject matches the
	// pattern. Wildcards follow NATS rules.
	Subscribe(subject string) (Consumer, error)
}
