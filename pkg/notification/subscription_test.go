package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthonyshort/notifyq/pkg/notification"
)

func TestSubscribe_ReceivesEvents(t *testing.T) {
	b := notification.New[toast]()

	var events []notification.Event[toast]
	sub := b.Subscribe(func(ev notification.Event[toast]) {
		events = append(events, ev)
	})
	defer sub.Close()

	b.Add("a", toast{Message: "one"})
	b.Add("b", toast{Message: "two"})
	b.Remove("a")
	b.RemoveAll()

	require.Len(t, events, 4)

	assert.Equal(t, notification.OpAdd, events[0].Op)
	assert.Equal(t, "a", events[0].Entry.ID)
	assert.Len(t, events[0].Entries, 1)

	assert.Equal(t, notification.OpAdd, events[1].Op)
	assert.Len(t, events[1].Entries, 2)

	assert.Equal(t, notification.OpRemove, events[2].Op)
	assert.Equal(t, "a", events[2].Entry.ID)
	assert.Equal(t, "one", events[2].Entry.Data.Message)
	assert.Len(t, events[2].Entries, 1)

	assert.Equal(t, notification.OpRemoveAll, events[3].Op)
	assert.Empty(t, events[3].Entries)
}

func TestSubscribe_SnapshotReflectsPostMutationState(t *testing.T) {
	b := notification.New[toast]()

	var latest []string
	sub := b.Subscribe(func(ev notification.Event[toast]) {
		latest = latest[:0]
		for _, e := range ev.Entries {
			latest = append(latest, e.Data.Message)
		}
	})
	defer sub.Close()

	b.Add("a", toast{Message: "one"})
	b.Add("a", toast{Message: "updated"})

	assert.Equal(t, []string{"updated"}, latest)
}

func TestSubscribe_DeliveryInRegistrationOrder(t *testing.T) {
	b := notification.New[toast]()

	var order []string
	first := b.Subscribe(func(notification.Event[toast]) {
		order = append(order, "first")
	})
	defer first.Close()
	second := b.Subscribe(func(notification.Event[toast]) {
		order = append(order, "second")
	})
	defer second.Close()

	b.Add("a", toast{Message: "hello"})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSubscription_Close(t *testing.T) {
	t.Run("stops delivery", func(t *testing.T) {
		b := notification.New[toast]()

		calls := 0
		sub := b.Subscribe(func(notification.Event[toast]) {
			calls++
		})

		b.Add("a", toast{Message: "one"})
		sub.Close()
		b.Add("b", toast{Message: "two"})

		assert.Equal(t, 1, calls)
	})

	t.Run("is idempotent", func(t *testing.T) {
		b := notification.New[toast]()

		sub := b.Subscribe(func(notification.Event[toast]) {})
		sub.Close()

		assert.NotPanics(t, func() {
			sub.Close()
			sub.Close()
		})
	})

	t.Run("does not affect other subscriptions", func(t *testing.T) {
		b := notification.New[toast]()

		var survivors int
		closed := b.Subscribe(func(notification.Event[toast]) {
			t.Error("closed subscription must not receive events")
		})
		keep := b.Subscribe(func(notification.Event[toast]) {
			survivors++
		})
		defer keep.Close()

		closed.Close()
		b.Add("a", toast{Message: "hello"})

		assert.Equal(t, 1, survivors)
	})
}

func TestSubscribe_HandlerMayMutateBinding(t *testing.T) {
	b := notification.New[toast]()

	var seen []notification.Op
	sub := b.Subscribe(func(ev notification.Event[toast]) {
		seen = append(seen, ev.Op)
		// Ack-and-dismiss pattern: react to an add by removing the entry
		if ev.Op == notification.OpAdd {
			b.Remove(ev.Entry.ID)
		}
	})
	defer sub.Close()

	b.Add("a", toast{Message: "hello"})

	assert.Equal(t, []notification.Op{notification.OpAdd, notification.OpRemove}, seen)
	assert.Empty(t, b.Entries())
}

func TestSubscribe_HandlerClosingLaterSubscriptionSuppressesDelivery(t *testing.T) {
	b := notification.New[toast]()

	var second *notification.Subscription[toast]
	first := b.Subscribe(func(notification.Event[toast]) {
		second.Close()
	})
	defer first.Close()
	second = b.Subscribe(func(notification.Event[toast]) {
		t.Error("subscription closed mid-dispatch must not receive the event")
	})

	b.Add("a", toast{Message: "hello"})
}
