package queue

// Immutable is a persistent ordered collection of entries keyed by id.
// Every mutator returns a new queue value and leaves the receiver untouched,
// so a held reference is a stable snapshot. Snapshots never share mutable
// state: the entry slice is copied on every structural change.
//
// The zero value is not usable; construct with NewImmutable.
type Immutable[T any] struct {
	entries []Entry[T]
}

// NewImmutable creates an immutable queue seeded with the given entries.
// The input slice is copied, so the caller keeps ownership of it.
func NewImmutable[T any](entries ...Entry[T]) *Immutable[T] {
	q := &Immutable[T]{entries: make([]Entry[T], len(entries))}
	copy(q.entries, entries)
	return q
}

// Add upserts an entry. When an entry with the same id exists it is replaced
// at its original position; otherwise the new entry is appended. The receiver
// is unchanged.
func (q *Immutable[T]) Add(id string, data T) Queue[T] {
	next := make([]Entry[T], len(q.entries), len(q.entries)+1)
	copy(next, q.entries)

	for i := range next {
		if next[i].ID == id {
			next[i] = Entry[T]{ID: id, Data: data}
			return &Immutable[T]{entries: next}
		}
	}

	return &Immutable[T]{entries: append(next, Entry[T]{ID: id, Data: data})}
}

// Remove returns a queue without the entry matching id, preserving the order
// of the remaining entries. Removing an absent id yields an equal queue.
func (q *Immutable[T]) Remove(id string) Queue[T] {
	next := make([]Entry[T], 0, len(q.entries))
	for _, e := range q.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return &Immutable[T]{entries: next}
}

// RemoveAll returns a fresh empty queue.
func (q *Immutable[T]) RemoveAll() Queue[T] {
	return &Immutable[T]{}
}

// Entries returns the entries in insertion order.
func (q *Immutable[T]) Entries() []Entry[T] {
	// Return a copy to prevent external mutation of the snapshot
	out := make([]Entry[T], len(q.entries))
	copy(out, q.entries)
	return out
}

// Len returns the number of entries.
func (q *Immutable[T]) Len() int {
	return len(q.entries)
}
