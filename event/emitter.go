package event

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Emitter pushes values to its registered receivers in subscription
// order. The zero value is ready to use. Emitter does not replay; see
// Cached for last-value replay.
type Emitter[T any] struct {
	receivers []*registration[T]
	closed    bool
}

type registration[T any] struct {
	receive Receiver[T]
	sub     *Subscription
}

// Subscribe implements Source.
func (e *Emitter[T]) Subscribe(r Receiver[T]) *Subscription {
	if e.closed {
		return ClosedSubscription()
	}
	reg := &registration[T]{receive: r}
	reg.sub = NewSubscription(func() { e.remove(reg) })
	e.receivers = append(e.receivers, reg)
	return reg.sub
}

func (e *Emitter[T]) remove(reg *registration[T]) {
	for i, r := range e.receivers {
		if r == reg {
			e.receivers = append(e.receivers[:i], e.receivers[i+1:]...)
			return
		}
	}
}

// Emit pushes v to all current receivers. Receivers subscribed or
// cancelled during the emission do not receive v.
func (e *Emitter[T]) Emit(v T) {
	if e.closed || len(e.receivers) == 0 {
		return
	}
	snapshot := make([]*registration[T], len(e.receivers))
	copy(snapshot, e.receivers)
	for _, reg := range snapshot {
		if !reg.sub.Done() {
			reg.receive(v)
		}
	}
}

// Close permanently completes the emitter: all subscriptions end, and
// future subscribers are done from the start. Idempotent.
func (e *Emitter[T]) Close() {
	if e.closed {
		return
	}
	e.closed = true
	receivers := e.receivers
	e.receivers = nil
	for _, reg := range receivers {
		reg.sub.Cancel()
	}
}

// Closed reports whether the emitter has completed.
func (e *Emitter[T]) Closed() bool {
	return e.closed
}

// HasReceivers reports whether anyone is subscribed.
func (e *Emitter[T]) HasReceivers() bool {
	return len(e.receivers) > 0
}

// --- Cached ----------------------------------------------------------------

// Cached is an Emitter that remembers the last emitted value and replays
// it to new subscribers. The zero value is an empty, ready to use source.
type Cached[T any] struct {
	Emitter[T]
	has  bool
	last T
}

// Set caches v and emits it.
func (c *Cached[T]) Set(v T) {
	if c.Closed() {
		return
	}
	c.has = true
	c.last = v
	c.Emit(v)
}

// Subscribe implements Source, replaying the cached value first.
func (c *Cached[T]) Subscribe(r Receiver[T]) *Subscription {
	sub := c.Emitter.Subscribe(r)
	if c.has && !sub.Done() {
		r(c.last)
	}
	return sub
}

// Value returns the cached value, if any.
func (c *Cached[T]) Value() (T, bool) {
	return c.last, c.has
}

// --- Constant sources ------------------------------------------------------

// Const returns a source that replays v to every subscriber and never
// updates.
func Const[T any](v T) Source[T] {
	return constSource[T]{v: v}
}

type constSource[T any] struct {
	v T
}

func (c constSource[T]) Subscribe(r Receiver[T]) *Subscription {
	sub := NewSubscription(nil)
	r(c.v)
	return sub
}
