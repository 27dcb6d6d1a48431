/*
Package sched abstracts the frame scheduling of render jobs.

A Scheduler defers jobs to the next rendering opportunity. How that
opportunity comes about is up to the host: a browser-like environment
would drive it from animation frames, tests and batch environments drive
a Manual scheduler explicitly, and Now runs everything inline.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sched

// Scheduler defers jobs to the next rendering opportunity. Jobs scheduled
// within one cycle run in scheduling order on the next tick.
type Scheduler interface {
	Schedule(job func())
}

// Now returns a scheduler executing every job immediately, on the
// caller's stack. Useful for tests and synchronous rendering.
func Now() Scheduler {
	return immediate{}
}

type immediate struct{}

func (immediate) Schedule(job func()) {
	job()
}

// Manual queues jobs until Flush is called, coalescing any number of
// scheduling cycles into a single externally driven tick. The zero value
// is ready to use.
type Manual struct {
	queue []func()
}

// Schedule implements Scheduler.
func (m *Manual) Schedule(job func()) {
	m.queue = append(m.queue, job)
}

// Flush runs all queued jobs in order. Jobs scheduled while flushing run
// within the same flush, after the ones already queued.
func (m *Manual) Flush() {
	for len(m.queue) > 0 {
		job := m.queue[0]
		m.queue = m.queue[1:]
		job()
	}
}

// Pending returns the number of queued jobs.
func (m *Manual) Pending() int {
	return len(m.queue)
}
