package event

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Receiver receives values pushed from a source.
type Receiver[T any] func(T)

// Source is a push-based channel of values. Implementations decide whether
// a new receiver gets the last value replayed; see Cached.
type Source[T any] interface {
	// Subscribe registers a receiver. The returned subscription detaches it.
	// A subscription to an already closed source is done from the start.
	Subscribe(Receiver[T]) *Subscription
}

// Subscription represents one receiver's registration with a source. The
// zero value is a live, detached subscription.
//
// Everything here is single-threaded and cooperative: cancellation and
// emission happen synchronously on the caller's stack.
type Subscription struct {
	detach   func()
	done     bool
	whenDone []func()
}

// NewSubscription creates a subscription running detach when cancelled.
// detach may be nil.
func NewSubscription(detach func()) *Subscription {
	return &Subscription{detach: detach}
}

// ClosedSubscription returns a subscription that is done from the start.
func ClosedSubscription() *Subscription {
	return &Subscription{done: true}
}

// Cancel stops observing and releases resources. It is idempotent: only
// the first call detaches the receiver and runs the done hooks.
func (s *Subscription) Cancel() {
	if s == nil || s.done {
		return
	}
	s.done = true
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	hooks := s.whenDone
	s.whenDone = nil
	for _, hook := range hooks {
		hook()
	}
}

// Done reports whether the subscription has ended.
func (s *Subscription) Done() bool {
	return s == nil || s.done
}

// WhenDone registers a hook to run once the subscription ends. On an
// already ended subscription the hook runs immediately.
func (s *Subscription) WhenDone(hook func()) *Subscription {
	if s == nil || s.done {
		hook()
		return s
	}
	s.whenDone = append(s.whenDone, hook)
	return s
}

// Needs ties this subscription to another one: when other ends, so does
// this subscription.
func (s *Subscription) Needs(other *Subscription) *Subscription {
	other.WhenDone(s.Cancel)
	return s
}
