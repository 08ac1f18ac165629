// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"sort"
	"sync"
)

// notifier fans a state-changed principal out to subscribers. It is the
// generic replacement for a UI-framework notification hook: anything that
// renders authentication state registers a callback and re-renders on change.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func(*Principal)
}

// subscribe registers fn and returns its unsubscribe function. Safe to call
// the returned function more than once.
func (n *notifier) subscribe(fn func(*Principal)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func(*Principal))
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// notify invokes every subscriber with the new snapshot, in registration
// order, on the caller's goroutine.
func (n *notifier) notify(p *Principal) {
	n.mu.Lock()
	fns := make([]func(*Principal), 0, len(n.subs))
	ids := make([]int, 0, len(n.subs))
	for id := range n.subs {
		ids = append(ids, id)
	}
	// map order is random; deliver oldest subscription first
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, n.subs[id])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}
