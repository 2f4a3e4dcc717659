package event

import "errors"

// Sentinel errors for the notifier.
var (
	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("event: handler cannot be nil")

	// ErrInvalidTopic is returned when subscribing to an empty topic.
	ErrInvalidTopic = errors.New("event: topic cannot be empty")
)

// PanicError wraps a handler panic recovered during delivery.
type PanicError struct {
	// SubscriptionID identifies the subscription whose handler panicked.
	SubscriptionID string

	// Topic is the topic being delivered.
	Topic Topic

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "event: handler panic for subscription " + e.SubscriptionID + " on topic " + string(e.Topic)
}
