package queue

// Mutable applies the same upsert/remove semantics as Immutable to a single
// backing slice: each mutator computes the result via the immutable algorithm,
// writes it back in place, and returns the same receiver. A long-lived handle
// therefore always reflects the latest state, which is what test code wants
// when it asserts on a queue after the fact. Production code should prefer
// Immutable.
type Mutable[T any] struct {
	entries []Entry[T]
}

// NewMutable creates a mutable queue seeded with the given entries.
// The input slice is copied, so the caller keeps ownership of it.
func NewMutable[T any](entries ...Entry[T]) *Mutable[T] {
	q := &Mutable[T]{entries: make([]Entry[T], len(entries))}
	copy(q.entries, entries)
	return q
}

// Add upserts an entry in place and returns the receiver.
func (q *Mutable[T]) Add(id string, data T) Queue[T] {
	next := NewImmutable(q.entries...).Add(id, data)
	q.entries = append(q.entries[:0], next.Entries()...)
	return q
}

// Remove excludes the entry matching id in place and returns the receiver.
func (q *Mutable[T]) Remove(id string) Queue[T] {
	next := NewImmutable(q.entries...).Remove(id)
	q.entries = append(q.entries[:0], next.Entries()...)
	return q
}

// RemoveAll clears the backing slice and returns the receiver.
func (q *Mutable[T]) RemoveAll() Queue[T] {
	q.entries = q.entries[:0]
	return q
}

// Entries returns the current entries in insertion order.
func (q *Mutable[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(q.entries))
	copy(out, q.entries)
	return out
}

// Len returns the number of entries.
func (q *Mutable[T]) Len() int {
	return len(q.entries)
}
