package notification

import "github.com/anthonyshort/notifyq/pkg/queue"

// Op identifies the mutation that produced an event.
type Op string

const (
	OpAdd       Op = "add"
	OpRemove    Op = "remove"
	OpRemoveAll Op = "remove_all"
)

// Event describes one binding mutation. Entry carries the affected entry for
// OpAdd and OpRemove and is the zero value for OpRemoveAll. Entries is the
// full post-mutation snapshot, so handlers can render the new state without
// calling back into the binding.
type Event[T any] struct {
	Op      Op
	Entry   queue.Entry[T]
	Entries []queue.Entry[T]
}

// Handler receives binding events.
type Handler[T any] func(Event[T])

// Subscription is a handle to an active handler registration.
type Subscription[T any] struct {
	binding *Binding[T]
	fn      Handler[T]
	closed  bool // guarded by binding.mu
}

// Subscribe registers a handler invoked synchronously after every mutation,
// in registration order. The returned subscription must be closed when the
// consumer is torn down.
func (b *Binding[T]) Subscribe(fn Handler[T]) *Subscription[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := &Subscription[T]{binding: b, fn: fn}
	b.subs = append(b.subs, s)
	return s
}

// Close removes the handler registration. It is idempotent, and no events are
// delivered once it returns.
func (s *Subscription[T]) Close() {
	s.binding.mu.Lock()
	defer s.binding.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	subs := s.binding.subs
	for i, sub := range subs {
		if sub == s {
			s.binding.subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

// snapshotSubs copies the subscriber list. Callers must hold b.mu.
func (b *Binding[T]) snapshotSubs() []*Subscription[T] {
	subs := make([]*Subscription[T], len(b.subs))
	copy(subs, b.subs)
	return subs
}

// notify delivers ev to each subscriber that is still open at delivery time,
// so a handler that closes a later subscription suppresses its delivery.
func (b *Binding[T]) notify(subs []*Subscription[T], ev Event[T]) {
	for _, s := range subs {
		b.mu.Lock()
		open := !s.closed
		b.mu.Unlock()

		if open {
			s.fn(ev)
		}
	}
}
