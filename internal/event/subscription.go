package event

import (
	"crypto/rand"
	"encoding/hex"
	"sync/atomic"
)

// Handler receives an event payload. Handlers run synchronously on the
// publishing goroutine and must not re-enter the engine.
type Handler func(payload any)

// Subscription is an active registration on the bus. It is safe to cancel
// from any goroutine.
type Subscription struct {
	id        string
	topic     Topic
	handler   Handler
	cancelled atomic.Bool
}

func newSubscription(topic Topic, h Handler) *Subscription {
	return &Subscription{
		id:      newSubscriptionID(),
		topic:   topic,
		handler: h,
	}
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Topic returns the subscribed topic.
func (s *Subscription) Topic() Topic {
	return s.topic
}

// IsActive returns true if the subscription can still receive events.
func (s *Subscription) IsActive() bool {
	return !s.cancelled.Load()
}

// Cancel permanently stops delivery to this subscription.
func (s *Subscription) Cancel() {
	s.cancelled.Store(true)
}

// newSubscriptionID generates a random 16-hex-character identifier.
func newSubscriptionID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
