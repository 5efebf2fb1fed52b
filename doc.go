// Package notifyq makes a notification binding ambient to a call tree via
// context.Context, the Go analogue of a UI framework's provider/consumer
// context.
//
// The heavy lifting lives in the subpackages:
//
//   - pkg/queue        — immutable and mutable keyed notification queues
//   - pkg/notification — the observable state binding over a queue
//
// This package only wires a binding into a context so that code deep in a
// call tree can reach it without parameter threading, scoped per payload
// type.
//
// Basic Usage:
//
//	type Toast struct {
//	    Message string
//	}
//
//	// Composition root: create and attach a binding.
//	ctx, b := notifyq.Provide[Toast](context.Background())
//
//	sub := b.Subscribe(func(ev notification.Event[Toast]) {
//	    render(ev.Entries)
//	})
//	defer sub.Close()
//
//	// Anywhere below: retrieve the same binding.
//	b, err := notifyq.FromContext[Toast](ctx)
//	if err != nil {
//	    // no provider above this point
//	}
//	b.Add("", Toast{Message: "Saved"})
//
// MustFromContext panics instead of returning ErrNoBinding, for call sites
// where a missing provider is a wiring bug that should fail during
// development rather than be handled.
package notifyq
