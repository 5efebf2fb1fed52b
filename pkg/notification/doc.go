// Package notification provides a stateful binding over pkg/queue that
// notifies subscribers on every change, replacing the re-render-on-state
// model of reactive UI frameworks with an explicit observer protocol.
//
// # Architecture
//
// A Binding holds one current queue value and three mutation entry points:
//
//   - Add        — upsert an entry, optionally registering a removal callback
//   - Remove     — exclude one entry, firing its removal callback once
//   - RemoveAll  — clear the queue, firing all callbacks in insertion order
//
// Subscribers registered with Subscribe are invoked synchronously after each
// mutation with the operation, the affected entry, and the post-mutation
// snapshot. Removal callbacks fire after the new queue value is installed and
// before subscribers are notified.
//
// # Basic Usage
//
//	type Toast struct {
//	    Message string
//	}
//
//	b := notification.New[Toast]()
//
//	sub := b.Subscribe(func(ev notification.Event[Toast]) {
//	    render(ev.Entries)
//	})
//	defer sub.Close()
//
//	id := b.Add("", Toast{Message: "Saved"})
//	b.Remove(id)
//
// # Auto-Dismiss
//
// The binding never owns timers. Callers that want notifications to expire
// schedule their own removal and cancel it on teardown:
//
//	timer := time.AfterFunc(5*time.Second, func() {
//	    b.Remove(id)
//	})
//
//	b.Add(id, toast, notification.WithOnRemove(func() {
//	    timer.Stop() // manual removal cancels the pending auto-dismiss
//	}))
//
// # Custom Queues
//
// By default a binding owns an empty immutable queue. Tests that want a
// stable external handle onto the binding's state can inject a mutable one:
//
//	m := queue.NewMutable[Toast]()
//	b := notification.New(notification.WithQueue[Toast](m))
//
//	b.Add("a", Toast{Message: "hi"})
//	m.Entries() // reflects the binding's latest state
package notification
