package sim

import "time"

// FrameFunc is a frame callback. now is the host's monotonic frame time.
type FrameFunc func(now time.Duration)

// Scheduler is the host's animation-frame source. RequestFrame asks for fn
// to be called once on the next frame; it must not call fn synchronously.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// FrameQueue is a Scheduler for hosts that drive frames from their own
// loop (a Bubble Tea tick, an Ebiten Update) and for tests.
type FrameQueue struct {
	pending []FrameFunc
}

// RequestFrame queues fn for the next Fire.
func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of queued callbacks.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Fire runs every callback queued before the call. Callbacks queued while
// firing wait for the next Fire. Returns the number of callbacks run.
func (q *FrameQueue) Fire(now time.Duration) int {
	fns := q.pending
	q.pending = nil
	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}
