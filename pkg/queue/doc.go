// Package queue provides an ordered collection of keyed notification entries
// with upsert-by-id add, filter remove, and clear operations.
//
// Two implementations share one contract:
//
//   - Immutable — every mutation returns a new queue value; held references
//     are stable snapshots
//   - Mutable   — every mutation rewrites a single backing slice in place and
//     returns the same receiver; intended for test inspection
//
// # Semantics
//
// Add is an upsert: when the id already exists, the entry is replaced at its
// original position rather than moved to the end, so insertion order survives
// repeated updates. Ids are unique within one queue by construction. Remove
// excludes at most one entry and tolerates absent ids. All operations are
// total; there are no error conditions.
//
// # Usage
//
//	q := queue.NewImmutable[string]()
//	q2 := q.Add("greeting", "hello")
//	q3 := q2.Add("greeting", "hi again") // replaces in place
//
//	q3.Entries() // [{greeting hi again}]
//	q.Entries()  // still empty
//
// The package has no opinion on id generation; callers supply ids that are
// meaningful to them. See pkg/notification for a stateful binding that also
// generates ids and dispatches change events.
package queue
