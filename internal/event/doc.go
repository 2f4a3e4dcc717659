// Package event provides the engine's change/selection notifier: a
// synchronous, instance-owned event bus.
//
// Delivery is strictly in-line: Publish runs every matching handler in
// registration order before returning, so listeners observe the document
// exactly as the triggering operation left it. There is no queue, no
// worker pool, and no delivery deduplication; a "select" report publishes
// even when the resolved range equals the previous one.
//
// Handlers are isolated: a panicking handler is recovered, counted, and
// reported to the bus's panic hook, and delivery continues with the
// remaining handlers. Reentrant engine mutation from inside a handler is
// unsupported; the engine has no re-entrancy guard.
package event
