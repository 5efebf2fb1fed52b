package notification_test

import (
	"fmt"
	"time"

	"github.com/anthonyshort/notifyq/pkg/notification"
	"github.com/anthonyshort/notifyq/pkg/queue"
)

type Toast struct {
	Message string
}

func ExampleBinding() {
	b := notification.New[Toast]()

	b.Add("a", Toast{Message: "x"})
	b.Add("b", Toast{Message: "y"})

	// Adding an existing id updates the entry in place
	b.Add("a", Toast{Message: "z"})

	for _, e := range b.Entries() {
		fmt.Printf("%s: %s\n", e.ID, e.Data.Message)
	}

	b.Remove("a")
	fmt.Println("after remove:", len(b.Entries()))

	b.RemoveAll()
	fmt.Println("after remove all:", len(b.Entries()))

	// Output:
	// a: z
	// b: y
	// after remove: 1
	// after remove all: 0
}

func ExampleBinding_Subscribe() {
	b := notification.New[Toast]()

	sub := b.Subscribe(func(ev notification.Event[Toast]) {
		fmt.Printf("%s -> %d entries\n", ev.Op, len(ev.Entries))
	})
	defer sub.Close()

	id := b.Add("", Toast{Message: "Saved"})
	b.Remove(id)

	// Output:
	// add -> 1 entries
	// remove -> 0 entries
}

// ExampleBinding_autoDismiss shows the caller-owned timer pattern: the
// binding never schedules removals itself, so expiry is a timer that calls
// Remove, and manual removal cancels the pending timer via the entry's
// removal callback.
func ExampleBinding_autoDismiss() {
	b := notification.New[Toast]()

	dismissed := make(chan struct{})
	timer := time.AfterFunc(10*time.Millisecond, func() {
		b.Remove("upload-done")
		close(dismissed)
	})

	b.Add("upload-done", Toast{Message: "Upload complete"},
		notification.WithOnRemove(func() {
			timer.Stop()
		}),
	)

	<-dismissed
	fmt.Println("entries left:", len(b.Entries()))

	// Output:
	// entries left: 0
}

func ExampleWithQueue() {
	// Inject a mutable queue to keep a stable external handle onto the
	// binding's state, typically from test code.
	m := queue.NewMutable[Toast]()
	b := notification.New(notification.WithQueue[Toast](m))

	b.Add("a", Toast{Message: "hello"})

	fmt.Println(m.Entries()[0].Data.Message)

	// Output:
	// hello
}
