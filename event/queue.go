package event

import "time"

// Queue is an unbounded FIFO of events with monotonic timestamps. Drivers
// fill it from their native message loop and drain it from PollEvent and
// WaitEvent. It is not safe for concurrent use; a queue belongs to the
// goroutine that owns its context.
type Queue struct {
	buf  []Event
	head int
	n    int

	now  func() time.Time
	last time.Time
}

// NewQueue returns an empty queue stamping events with time.Now.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// SetClock replaces the clock used by Header. Passing nil restores time.Now.
func (q *Queue) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	q.now = now
}

// Header returns a header for window id stamped with the current time. The
// returned time never precedes the time of a previously issued header.
func (q *Queue) Header(id WindowID) Header {
	t := q.now()
	if t.Before(q.last) {
		t = q.last
	}
	q.last = t
	return Header{Window: id, Time: t}
}

// Push appends e to the back of the queue.
func (q *Queue) Push(e Event) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = e
	q.n++
	if t := e.Timestamp(); t.After(q.last) {
		q.last = t
	}
}

// Pop removes and returns the event at the front of the queue.
func (q *Queue) Pop() (Event, bool) {
	if q.n == 0 {
		return nil, false
	}
	e := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int { return q.n }

// Purge drops every queued event for window id, keeping the relative order
// of the rest, and reports how many were removed.
func (q *Queue) Purge(id WindowID) int {
	kept := 0
	for i := 0; i < q.n; i++ {
		e := q.buf[(q.head+i)%len(q.buf)]
		if e.WindowID() == id {
			continue
		}
		q.buf[(q.head+kept)%len(q.buf)] = e
		kept++
	}
	for i := kept; i < q.n; i++ {
		q.buf[(q.head+i)%len(q.buf)] = nil
	}
	removed := q.n - kept
	q.n = kept
	return removed
}

func (q *Queue) grow() {
	size := 2 * len(q.buf)
	if size == 0 {
		size = 16
	}
	buf := make([]Event, size)
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
