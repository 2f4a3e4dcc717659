package event

import "sync"

// registry stores subscriptions by topic in registration order. The mutex
// covers registration changes only: a host may add or remove listeners from
// another goroutine while the engine publishes.
type registry struct {
	mu      sync.RWMutex
	byTopic map[Topic][]*Subscription
	byID    map[string]*Subscription
}

func newRegistry() *registry {
	return &registry{
		byTopic: make(map[Topic][]*Subscription),
		byID:    make(map[string]*Subscription),
	}
}

func (r *registry) add(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTopic[sub.topic] = append(r.byTopic[sub.topic], sub)
	r.byID[sub.id] = sub
}

// remove cancels and deletes a subscription by ID.
func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byID[id]
	if !ok {
		return false
	}
	sub.Cancel()
	delete(r.byID, id)

	subs := r.byTopic[sub.topic]
	for i, s := range subs {
		if s.id == id {
			r.byTopic[sub.topic] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(r.byTopic[sub.topic]) == 0 {
		delete(r.byTopic, sub.topic)
	}
	return true
}

// matching returns a snapshot of the topic's active subscriptions in
// registration order.
func (r *registry) matching(topic Topic) []*Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.byTopic[topic]
	if len(subs) == 0 {
		return nil
	}
	out := make([]*Subscription, 0, len(subs))
	for _, s := range subs {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		s.Cancel()
	}
	r.byTopic = make(map[Topic][]*Subscription)
	r.byID = make(map[string]*Subscription)
}
