package playback

import (
	"sync"

	"github.com/san-kum/animato/internal/scene"
)

// Loop drives a Clock from a Scheduler. It holds at most one outstanding
// frame callback and cancels it on pause, end, restart, replacement and
// close. All clock access is serialised behind one mutex.
type Loop struct {
	mu      sync.Mutex
	clock   *Clock
	sched   Scheduler
	pending Handle
	closed  bool
}

func NewLoop(clock *Clock, sched Scheduler) *Loop {
	return &Loop{clock: clock, sched: sched}
}

func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clock.State()
}

func (l *Loop) Scene() *scene.Scene {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clock.Scene()
}

// Play starts the clock and schedules the first frame.
func (l *Loop) Play() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	err := l.clock.Play()
	l.reschedule()
	return err
}

func (l *Loop) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.cancel()
	l.clock.Pause()
}

// Toggle pauses a playing loop and plays any other.
func (l *Loop) Toggle() error {
	l.mu.Lock()
	playing := l.clock.State().IsPlaying
	l.mu.Unlock()
	if playing {
		l.Pause()
		return nil
	}
	return l.Play()
}

func (l *Loop) Restart() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.cancel()
	l.clock.Restart()
}

func (l *Loop) Seek(t float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.clock.Seek(t)
	l.reschedule()
}

// Replace swaps in a new scene. The pending frame is cancelled and the
// clock reset before the lock is released, so no tick can observe the
// old duration against the new scene.
func (l *Loop) Replace(sc *scene.Scene) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.cancel()
	l.clock.Load(sc)
}

// Close cancels any pending frame. The loop never renders afterwards.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel()
	l.closed = true
}

func (l *Loop) cancel() {
	if l.pending != 0 {
		l.sched.Cancel(l.pending)
		l.pending = 0
	}
}

// reschedule keeps exactly one frame pending while the clock plays.
func (l *Loop) reschedule() {
	if !l.clock.State().IsPlaying {
		l.cancel()
		return
	}
	if l.pending != 0 {
		return
	}
	h := new(Handle)
	*h = l.sched.Schedule(func() { l.frame(h) })
	l.pending = *h
}

// frame reads the handle under the lock; the scheduler may fire before
// Schedule has returned it.
func (l *Loop) frame(h *Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || *h == 0 || *h != l.pending {
		return
	}
	l.pending = 0
	l.clock.Tick()
	l.reschedule()
}
