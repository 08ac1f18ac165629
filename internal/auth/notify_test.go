package auth

import (
	"reflect"
	"testing"
)

func TestNotifyDeliversInRegistrationOrder(t *testing.T) {
	var n notifier
	var order []string

	n.subscribe(func(*Principal) { order = append(order, "first") })
	n.subscribe(func(*Principal) { order = append(order, "second") })
	n.subscribe(func(*Principal) { order = append(order, "third") })

	n.notify(Unauthenticated)

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("delivery order = %v, want %v", order, want)
	}
}

func TestNotifyPassesSnapshot(t *testing.T) {
	var n notifier
	p := newPrincipal([]Claim{{Type: ClaimEmail, Value: "ada@example.com"}}, 1)

	var got *Principal
	n.subscribe(func(snap *Principal) { got = snap })
	n.notify(p)

	if got != p {
		t.Errorf("subscriber received %p, want %p", got, p)
	}
}

func TestUnsubscribe(t *testing.T) {
	var n notifier
	calls := 0
	cancel := n.subscribe(func(*Principal) { calls++ })

	n.notify(Unauthenticated)
	cancel()
	n.notify(Unauthenticated)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestNotifyWithNoSubscribers(t *testing.T) {
	var n notifier
	n.notify(Unauthenticated) // must not panic on the nil map
}

// Unsubscribing one callback must not disturb the others.
func TestUnsubscribeMiddle(t *testing.T) {
	var n notifier
	var order []string

	n.subscribe(func(*Principal) { order = append(order, "first") })
	cancel := n.subscribe(func(*Principal) { order = append(order, "second") })
	n.subscribe(func(*Principal) { order = append(order, "third") })
	cancel()

	n.notify(Unauthenticated)

	want := []string{"first", "third"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("delivery order = %v, want %v", order, want)
	}
}
