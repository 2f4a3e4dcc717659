package event

import "runtime/debug"

// PanicHandler is called when a subscription's handler panics during
// delivery. It runs on the publishing goroutine after recovery.
type PanicHandler func(*PanicError)

// execute runs one handler with panic isolation and reports whether it
// completed normally. A panic in the panic handler itself is swallowed;
// listener failures must never reach the triggering operation.
func execute(sub *Subscription, topic Topic, payload any, onPanic PanicHandler) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if onPanic == nil {
				return
			}
			perr := &PanicError{
				SubscriptionID: sub.id,
				Topic:          topic,
				Value:          r,
				Stack:          debug.Stack(),
			}
			func() {
				defer func() { _ = recover() }()
				onPanic(perr)
			}()
		}
	}()

	sub.handler(payload)
	return true
}
