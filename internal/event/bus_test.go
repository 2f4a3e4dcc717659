package event

import (
	"errors"
	"testing"
)

func TestSubscribeValidation(t *testing.T) {
	b := NewBus()

	if _, err := b.Subscribe("", func(any) {}); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("empty topic: got %v", err)
	}
	if _, err := b.Subscribe(TopicChange, nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("nil handler: got %v", err)
	}
}

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	b := NewBus()
	var order []int
	for i := 0; i < 4; i++ {
		i := i
		if _, err := b.Subscribe(TopicChange, func(any) { order = append(order, i) }); err != nil {
			t.Fatalf("Subscribe: %v", err)
		}
	}

	b.Publish(TopicChange, nil)

	if len(order) != 4 {
		t.Fatalf("expected 4 deliveries, got %d", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("delivery order %v, want registration order", order)
		}
	}
}

func TestPublishIsSynchronous(t *testing.T) {
	b := NewBus()
	seen := false
	if _, err := b.Subscribe(TopicSelect, func(p any) {
		if p.(string) != "payload" {
			t.Errorf("payload = %v", p)
		}
		seen = true
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	b.Publish(TopicSelect, "payload")
	if !seen {
		t.Error("handler must run before Publish returns")
	}
}

func TestPublishToOtherTopicNotDelivered(t *testing.T) {
	b := NewBus()
	called := false
	if _, err := b.Subscribe(TopicChange, func(any) { called = true }); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	b.Publish(TopicSelect, nil)
	if called {
		t.Error("handler on another topic must not fire")
	}
}

func TestPanicIsolation(t *testing.T) {
	var panics []*PanicError
	b := NewBus(WithPanicHandler(func(pe *PanicError) { panics = append(panics, pe) }))

	var delivered []string
	mustSubscribe(t, b, TopicChange, func(any) { delivered = append(delivered, "first") })
	mustSubscribe(t, b, TopicChange, func(any) { panic("boom") })
	mustSubscribe(t, b, TopicChange, func(any) { delivered = append(delivered, "third") })

	b.Publish(TopicChange, nil)

	if len(delivered) != 2 || delivered[0] != "first" || delivered[1] != "third" {
		t.Errorf("delivery must continue past a panic: %v", delivered)
	}
	if len(panics) != 1 || panics[0].Value != "boom" {
		t.Fatalf("panic hook not invoked correctly: %+v", panics)
	}
	if panics[0].Topic != TopicChange || panics[0].SubscriptionID == "" {
		t.Errorf("panic error missing context: %+v", panics[0])
	}

	s := b.Stats()
	if s.Published != 1 || s.Delivered != 2 || s.Failures != 1 {
		t.Errorf("stats = %+v", s)
	}
}

func TestPanicHandlerPanicIsSwallowed(t *testing.T) {
	b := NewBus(WithPanicHandler(func(*PanicError) { panic("hook panic") }))
	mustSubscribe(t, b, TopicChange, func(any) { panic("boom") })

	// Must not escape to the publisher.
	b.Publish(TopicChange, nil)
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()
	calls := 0
	sub := mustSubscribe(t, b, TopicChange, func(any) { calls++ })

	b.Publish(TopicChange, nil)
	if !b.Unsubscribe(sub.ID()) {
		t.Fatal("Unsubscribe should report true for a live subscription")
	}
	b.Publish(TopicChange, nil)

	if calls != 1 {
		t.Errorf("expected 1 delivery, got %d", calls)
	}
	if b.Unsubscribe(sub.ID()) {
		t.Error("second Unsubscribe should report false")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("count = %d", b.SubscriberCount())
	}
}

func TestCancelledSubscriptionSkipped(t *testing.T) {
	b := NewBus()
	calls := 0
	sub := mustSubscribe(t, b, TopicChange, func(any) { calls++ })
	sub.Cancel()

	b.Publish(TopicChange, nil)
	if calls != 0 {
		t.Error("cancelled subscription must not receive events")
	}
	if sub.IsActive() {
		t.Error("cancelled subscription reports active")
	}
}

func TestNoDeduplication(t *testing.T) {
	b := NewBus()
	calls := 0
	mustSubscribe(t, b, TopicSelect, func(any) { calls++ })

	// The same payload published twice delivers twice.
	b.Publish(TopicSelect, SelectEvent{})
	b.Publish(TopicSelect, SelectEvent{})

	if calls != 2 {
		t.Errorf("expected 2 deliveries, got %d", calls)
	}
}

func TestClose(t *testing.T) {
	b := NewBus()
	calls := 0
	mustSubscribe(t, b, TopicChange, func(any) { calls++ })

	b.Close()
	b.Publish(TopicChange, nil)

	if calls != 0 || b.SubscriberCount() != 0 {
		t.Errorf("Close must cancel everything: calls=%d count=%d", calls, b.SubscriberCount())
	}
}

func mustSubscribe(t *testing.T, b *Bus, topic Topic, h Handler) *Subscription {
	t.Helper()
	sub, err := b.Subscribe(topic, h)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	return sub
}
