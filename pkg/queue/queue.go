package queue

// Entry is one keyed notification held by a queue.
type Entry[T any] struct {
	ID   string `json:"id"`
	Data T      `json:"data"`
}

// Queue is the contract shared by the immutable and mutable implementations.
// Add upserts by id: an existing entry is replaced at its original position,
// a new id is appended. Remove excludes at most one entry and is a no-op for
// an absent id. RemoveAll discards every entry. Entries returns the current
// entries in insertion order.
//
// Whether a mutator returns a fresh queue value or the same receiver depends
// on the implementation; callers that need either behavior should hold the
// concrete type.
type Queue[T any] interface {
	Add(id string, data T) Queue[T]
	Remove(id string) Queue[T]
	RemoveAll() Queue[T]
	Entries() []Entry[T]
	Len() int
}
