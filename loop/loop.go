package loop

import (
	"time"

	"github.com/lixenwraith/backdrop/canvas"
)

// Scene is an effect that paints one frame
type Scene interface {
	Render(s canvas.Surface)
}

// Loop renders a scene on a surface at most once per frame interval
type Loop struct {
	sched    Scheduler
	scene    Scene
	surface  canvas.Surface
	interval time.Duration

	last    time.Duration
	started bool
	frames  uint64
	skipped uint64
}

// New creates a loop; targetFPS <= 0 renders on every callback
func New(sched Scheduler, scene Scene, surface canvas.Surface, targetFPS float64) *Loop {
	l := &Loop{
		sched:   sched,
		scene:   scene,
		surface: surface,
	}
	if targetFPS > 0 {
		l.interval = time.Duration(float64(time.Second) / targetFPS)
	}
	return l
}

// Interval returns the minimum time between rendered frames
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Frames returns the number of rendered frames
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Skipped returns the number of throttled callbacks
func (l *Loop) Skipped() uint64 {
	return l.skipped
}

// Start registers the first frame callback
// Returns nil without scheduling when there is no surface to draw on
func (l *Loop) Start() *Handle {
	if l.surface == nil || l.scene == nil || l.sched == nil {
		return nil
	}
	h := &Handle{loop: l}
	h.id = l.sched.RequestFrame(h.frame)
	return h
}

// frame re-registers before throttling so skipped frames keep the loop alive
func (h *Handle) frame(now time.Duration) {
	if h.stopped {
		return
	}
	l := h.loop
	h.id = l.sched.RequestFrame(h.frame)

	delta := now - l.last
	if l.interval > 0 {
		if l.started && delta < l.interval {
			l.skipped++
			return
		}
		l.last = now - delta%l.interval
	} else {
		l.last = now
	}

	l.started = true
	l.scene.Render(l.surface)
	l.frames++
}

// Handle is the running loop returned by Start
type Handle struct {
	loop     *Loop
	id       FrameID
	stopped  bool
	teardown []func()
}

// OnStop registers fn to run once when the handle is stopped
func (h *Handle) OnStop(fn func()) {
	if h == nil {
		return
	}
	if h.stopped {
		fn()
		return
	}
	h.teardown = append(h.teardown, fn)
}

// Stop cancels the pending frame and runs teardown hooks in reverse order
// Safe to call more than once and on a nil handle
func (h *Handle) Stop() {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true
	h.loop.sched.CancelFrame(h.id)
	for i := len(h.teardown) - 1; i >= 0; i-- {
		h.teardown[i]()
	}
	h.teardown = nil
}

// Stopped reports whether Stop has been called
func (h *Handle) Stopped() bool {
	return h == nil || h.stopped
}
