package notifyq

import (
	"context"
	"errors"

	"github.com/anthonyshort/notifyq/pkg/notification"
)

// ErrNoBinding is returned by FromContext when no binding for the requested
// payload type is carried by the context. It signals a wiring mistake: some
// caller reached for a binding outside any provider scope.
var ErrNoBinding = errors.New("notifyq: no notification binding in context")

// ctxKey is the context key for a binding of payload type T. Distinct
// instantiations produce distinct key types, so bindings for different
// payload types coexist in one context without collision.
type ctxKey[T any] struct{}

// NewContext returns a child context carrying the binding. Attaching another
// binding of the same payload type deeper in the chain shadows this one,
// following context.WithValue semantics.
func NewContext[T any](ctx context.Context, b *notification.Binding[T]) context.Context {
	return context.WithValue(ctx, ctxKey[T]{}, b)
}

// Provide creates a fresh binding, attaches it to ctx, and returns both. An
// externally supplied queue can be injected with notification.WithQueue;
// otherwise the binding owns a new empty immutable queue.
func Provide[T any](ctx context.Context, opts ...notification.Option[T]) (context.Context, *notification.Binding[T]) {
	b := notification.New[T](opts...)
	return NewContext(ctx, b), b
}

// FromContext retrieves the nearest binding for payload type T, or
// ErrNoBinding when the context carries none.
func FromContext[T any](ctx context.Context) (*notification.Binding[T], error) {
	b, ok := ctx.Value(ctxKey[T]{}).(*notification.Binding[T])
	if !ok {
		return nil, ErrNoBinding
	}
	return b, nil
}

// MustFromContext is FromContext that panics on a missing binding. Use it
// where an absent binding is a programmer error that should abort loudly
// rather than be handled.
func MustFromContext[T any](ctx context.Context) *notification.Binding[T] {
	b, err := FromContext[T](ctx)
	if err != nil {
		panic(err)
	}
	return b
}
