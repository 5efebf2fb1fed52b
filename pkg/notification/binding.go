package notification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/anthonyshort/notifyq/pkg/queue"
)

// Binding adapts a queue value to an observable state cell. It holds exactly
// one current queue, a registry of per-entry removal callbacks, and a set of
// subscribers notified after every mutation.
//
// All methods are safe for concurrent use. Removal callbacks and subscriber
// handlers run outside the binding's lock, so they may call back into the
// binding.
type Binding[T any] struct {
	mu       sync.Mutex
	queue    queue.Queue[T]
	onRemove map[string]func()
	subs     []*Subscription[T]
	logger   *slog.Logger
}

// Option configures a Binding.
type Option[T any] func(*Binding[T])

// WithQueue sets the initial queue value. Pass a *queue.Mutable to keep an
// external long-lived handle onto the binding's state, e.g. for test
// inspection. A nil queue is ignored.
func WithQueue[T any](q queue.Queue[T]) Option[T] {
	return func(b *Binding[T]) {
		if q != nil {
			b.queue = q
		}
	}
}

// WithLogger sets the logger for the Binding.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(b *Binding[T]) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a binding backed by an empty immutable queue unless WithQueue
// supplies another starting value.
func New[T any](opts ...Option[T]) *Binding[T] {
	b := &Binding[T]{
		queue:    queue.NewImmutable[T](),
		onRemove: make(map[string]func()),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddOption configures a single Add call.
type AddOption func(*addConfig)

type addConfig struct {
	onRemove func()
}

// WithOnRemove registers a callback invoked exactly once when the entry is
// removed, either by Remove or RemoveAll. A later Add for the same id
// replaces the registration without invoking the previous callback, the same
// overwrite policy Add applies to entry data.
func WithOnRemove(fn func()) AddOption {
	return func(c *addConfig) {
		c.onRemove = fn
	}
}

// Add upserts an entry and returns its effective id. An empty id gets a
// generated UUID, so callers that don't care about keys can treat Add as a
// plain push. Subscribers are notified after the new queue value is
// installed.
func (b *Binding[T]) Add(id string, data T, opts ...AddOption) string {
	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b.mu.Lock()
	if id == "" {
		id = uuid.New().String()
	}
	b.queue = b.queue.Add(id, data)
	if cfg.onRemove != nil {
		b.onRemove[id] = cfg.onRemove
	}
	entries := b.queue.Entries()
	subs := b.snapshotSubs()
	b.mu.Unlock()

	b.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification added",
		slog.String("id", id),
		slog.Int("count", len(entries)),
	)

	b.notify(subs, Event[T]{
		Op:      OpAdd,
		Entry:   queue.Entry[T]{ID: id, Data: data},
		Entries: entries,
	})

	return id
}

// Remove excludes the entry matching id. When the entry was present and has a
// registered removal callback, the callback fires exactly once, after the new
// queue value is installed and before subscribers are notified; the
// registration is deleted either way. Removing an absent id is a no-op and
// produces no event.
func (b *Binding[T]) Remove(id string) {
	b.mu.Lock()
	var removed *queue.Entry[T]
	for _, e := range b.queue.Entries() {
		if e.ID == id {
			removed = &e
			break
		}
	}
	b.queue = b.queue.Remove(id)
	fn := b.onRemove[id]
	delete(b.onRemove, id)
	entries := b.queue.Entries()
	subs := b.snapshotSubs()
	b.mu.Unlock()

	if removed == nil {
		return
	}

	if fn != nil {
		fn()
	}

	b.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification removed",
		slog.String("id", id),
		slog.Int("count", len(entries)),
	)

	b.notify(subs, Event[T]{
		Op:      OpRemove,
		Entry:   *removed,
		Entries: entries,
	})
}

// RemoveAll discards every entry. Registered removal callbacks fire exactly
// once each, in ascending insertion order, after the empty queue is installed
// and before subscribers are notified. Calling RemoveAll on an empty binding
// is a no-op and produces no event.
func (b *Binding[T]) RemoveAll() {
	b.mu.Lock()
	prev := b.queue.Entries()
	b.queue = b.queue.RemoveAll()
	fns := make([]func(), 0, len(prev))
	for _, e := range prev {
		if fn := b.onRemove[e.ID]; fn != nil {
			fns = append(fns, fn)
		}
	}
	clear(b.onRemove)
	subs := b.snapshotSubs()
	b.mu.Unlock()

	if len(prev) == 0 {
		return
	}

	for _, fn := range fns {
		fn()
	}

	b.logger.LogAttrs(context.Background(), slog.LevelDebug, "all notifications removed",
		slog.Int("removed", len(prev)),
	)

	b.notify(subs, Event[T]{
		Op:      OpRemoveAll,
		Entries: []queue.Entry[T]{},
	})
}

// Entries returns the current queue's entries in insertion order.
func (b *Binding[T]) Entries() []queue.Entry[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue.Entries()
}

// Len returns the number of entries currently held.
func (b *Binding[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue.Len()
}

// Queue returns the current queue value.
func (b *Binding[T]) Queue() queue.Queue[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue
}
