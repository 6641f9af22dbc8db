// Package loop drives effects from a host redraw callback.
//
// A Scheduler hands out one-shot frame callbacks in the manner of a browser's
// animation frame queue. Loop re-registers itself on every callback and
// throttles rendering to a target frame rate; Handle tears it down.
package loop

import "time"

// FrameFunc receives the frame timestamp measured from the scheduler origin
type FrameFunc func(now time.Duration)

// FrameID identifies a pending frame callback; zero is never issued
type FrameID uint64

// Scheduler is the host redraw primitive
type Scheduler interface {
	// RequestFrame queues fn to run once on the next pump
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame drops a queued callback; unknown ids are ignored
	CancelFrame(id FrameID)
}

// FramePump is the host Scheduler: callbacks queue until the host calls Pump
// from its own goroutine. Not safe for concurrent use.
type FramePump struct {
	clock   TimeProvider
	origin  time.Time
	nextID  FrameID
	pending map[FrameID]FrameFunc
	order   []FrameID
	batch   []FrameID
}

// NewFramePump creates a pump whose timestamps count from clock's current time
func NewFramePump(clock TimeProvider) *FramePump {
	return &FramePump{
		clock:   clock,
		origin:  clock.Now(),
		pending: make(map[FrameID]FrameFunc),
	}
}

// RequestFrame implements Scheduler
func (p *FramePump) RequestFrame(fn FrameFunc) FrameID {
	p.nextID++
	id := p.nextID
	p.pending[id] = fn
	p.order = append(p.order, id)
	return id
}

// CancelFrame implements Scheduler
func (p *FramePump) CancelFrame(id FrameID) {
	delete(p.pending, id)
}

// Pending returns the number of queued callbacks
func (p *FramePump) Pending() int {
	return len(p.pending)
}

// Pump runs every callback queued before the call, in request order
// Callbacks requested while pumping wait for the next pump
// Returns the number of callbacks run
func (p *FramePump) Pump() int {
	if len(p.order) == 0 {
		return 0
	}

	now := p.clock.Now().Sub(p.origin)

	p.batch, p.order = p.order, p.batch[:0]
	ran := 0
	for _, id := range p.batch {
		fn, ok := p.pending[id]
		if !ok {
			continue
		}
		delete(p.pending, id)
		fn(now)
		ran++
	}
	return ran
}
