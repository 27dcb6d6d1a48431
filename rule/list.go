package rule

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/proc7ts/style-producer/event"
	"github.com/proc7ts/style-producer/selector"
)

// List is a live view of the non-empty rules within a subtree: the rules
// holding property contributions, including the scope rule itself when it
// holds some. Empty, latent nodes are skipped transparently.
type List struct {
	scope   *Rule
	queries []selector.Selector
}

// Rules returns the live collection of non-empty rules at and below r.
func (r *Rule) Rules() *List {
	return &List{scope: r}
}

// Grab narrows the list down to the rules whose absolute selector matches
// the given sub-selector (see selector.Matches). Grabs compose: grabbing
// a grabbed list applies both filters.
func (l *List) Grab(sel ...any) *List {
	queries := make([]selector.Selector, len(l.queries), len(l.queries)+1)
	copy(queries, l.queries)
	return &List{
		scope:   l.scope,
		queries: append(queries, selector.Normalize(sel...)),
	}
}

// matches checks scope and selector filters, but not emptiness.
func (l *List) matches(r *Rule) bool {
	in := false
	for node := r; node != nil; node = node.parent {
		if node == l.scope {
			in = true
			break
		}
	}
	if !in {
		return false
	}
	if len(l.queries) == 0 {
		return true
	}
	abs := r.AbsoluteSelector()
	for _, q := range l.queries {
		if !selector.Matches(abs, q) {
			return false
		}
	}
	return true
}

// Snapshot returns the current members of the list in document order.
func (l *List) Snapshot() []*Rule {
	var out []*Rule
	l.scope.walk(func(r *Rule) {
		if len(r.contribs) > 0 && l.matches(r) {
			out = append(out, r)
		}
	})
	return out
}

func (r *Rule) walk(visit func(*Rule)) {
	visit(r)
	for _, ch := range r.children {
		ch.walk(visit)
	}
}

// Track observes the list over time. The receiver is called once with the
// current members as added, unless there are none, and then on every
// membership change with the respective deltas. Cancelling the returned
// subscription stops tracking.
func (l *List) Track(receive func(added, removed []*Rule)) *event.Subscription {
	members := map[*Rule]bool{}
	sub := l.scope.root.updates.Subscribe(func(d Delta) {
		var added, removed []*Rule
		for _, r := range d.Added {
			if !members[r] && l.matches(r) {
				members[r] = true
				added = append(added, r)
			}
		}
		for _, r := range d.Removed {
			if members[r] {
				delete(members, r)
				removed = append(removed, r)
			}
		}
		if len(added) > 0 || len(removed) > 0 {
			receive(added, removed)
		}
	})
	initial := l.Snapshot()
	for _, r := range initial {
		members[r] = true
	}
	if len(initial) > 0 {
		receive(initial, nil)
	}
	return sub
}
