package event

import "sync/atomic"

// Bus is the engine's notifier. One bus belongs to one engine instance;
// its lifecycle is the engine's lifecycle.
type Bus struct {
	registry *registry
	onPanic  PanicHandler

	published atomic.Uint64
	delivered atomic.Uint64
	failures  atomic.Uint64
}

// Option configures a Bus.
type Option func(*Bus)

// WithPanicHandler sets the hook invoked when a handler panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(b *Bus) {
		b.onPanic = h
	}
}

// NewBus creates an empty notifier.
func NewBus(opts ...Option) *Bus {
	b := &Bus{registry: newRegistry()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for a topic and returns the subscription.
// Handlers for one topic run in registration order.
func (b *Bus) Subscribe(topic Topic, h Handler) (*Subscription, error) {
	if topic == "" {
		return nil, ErrInvalidTopic
	}
	if h == nil {
		return nil, ErrNilHandler
	}
	sub := newSubscription(topic, h)
	b.registry.add(sub)
	return sub, nil
}

// Unsubscribe cancels a subscription by ID. It reports whether the
// subscription existed.
func (b *Bus) Unsubscribe(id string) bool {
	return b.registry.remove(id)
}

// Publish delivers the payload to every active subscription on the topic,
// synchronously, in registration order. Handler panics are isolated and do
// not stop delivery to the remaining handlers.
func (b *Bus) Publish(topic Topic, payload any) {
	b.published.Add(1)
	for _, sub := range b.registry.matching(topic) {
		if execute(sub, topic, payload, b.onPanic) {
			b.delivered.Add(1)
		} else {
			b.failures.Add(1)
		}
	}
}

// SubscriberCount returns the number of registered subscriptions.
func (b *Bus) SubscriberCount() int {
	return b.registry.count()
}

// Close cancels every subscription.
func (b *Bus) Close() {
	b.registry.clear()
}

// Stats reports the bus's delivery counters.
type Stats struct {
	Published uint64
	Delivered uint64
	Failures  uint64
}

// Stats returns a snapshot of the delivery counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
		Failures:  b.failures.Load(),
	}
}
