package eventq

import (
	"sync"
	"time"
)

// Queue is the single input FIFO. Driver pumps and synthetic injection
// both Push; consumers Poll or Wait. The queue is safe for concurrent use:
// the driver pump runs on its own goroutine.
type Queue struct {
	mu     sync.Mutex
	items  []Event
	notify chan struct{}
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

// Push appends an event. Real and injected events go through the same
// path, keeping the two indistinguishable downstream.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.items = append(q.items, e)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Poll removes and returns the oldest event without blocking. On an empty
// queue it returns the KindNone sentinel and false.
func (q *Queue) Poll() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Event{}, false
	}
	e := q.items[0]
	q.items = q.items[1:]
	return e, true
}

// Wait blocks until an event arrives or the timeout elapses. A zero or
// negative timeout degrades to a non-blocking poll. This is the only
// blocking operation the engine exposes.
func (q *Queue) Wait(timeout time.Duration) (Event, bool) {
	if e, ok := q.Poll(); ok {
		return e, true
	}
	if timeout <= 0 {
		return Event{}, false
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		select {
		case <-q.notify:
			if e, ok := q.Poll(); ok {
				return e, true
			}
			// Another consumer won the race; keep waiting.
		case <-deadline.C:
			return Event{}, false
		}
	}
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
