package playback

import (
	"sort"
	"sync"
	"time"
)

// Handle identifies a scheduled frame callback. The zero Handle is never
// issued.
type Handle uint64

// Scheduler delivers one-shot frame callbacks at the host's frame pace.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

// frameQueue is the pending-callback bookkeeping shared by schedulers.
type frameQueue struct {
	mu      sync.Mutex
	next    Handle
	pending map[Handle]func()
}

func (q *frameQueue) add(fn func()) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[Handle]func())
	}
	q.next++
	q.pending[q.next] = fn
	return q.next
}

func (q *frameQueue) remove(h Handle) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.pending[h]
	delete(q.pending, h)
	return ok
}

// drain removes and returns every pending callback in scheduling order.
func (q *frameQueue) drain() []func() {
	q.mu.Lock()
	handles := make([]Handle, 0, len(q.pending))
	for h := range q.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	fns := make([]func(), len(handles))
	for i, h := range handles {
		fns[i] = q.pending[h]
		delete(q.pending, h)
	}
	q.mu.Unlock()
	return fns
}

func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// TickerScheduler fires pending callbacks on every beat of a wall-clock
// ticker, on its own goroutine.
type TickerScheduler struct {
	queue  frameQueue
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewTickerScheduler starts a scheduler beating fps times per second.
func NewTickerScheduler(fps float64) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	s := &TickerScheduler{
		ticker: time.NewTicker(time.Duration(float64(time.Second) / fps)),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *TickerScheduler) run() {
	for {
		select {
		case <-s.ticker.C:
			for _, fn := range s.queue.drain() {
				fn()
			}
		case <-s.done:
			return
		}
	}
}

func (s *TickerScheduler) Schedule(fn func()) Handle { return s.queue.add(fn) }
func (s *TickerScheduler) Cancel(h Handle)           { s.queue.remove(h) }

// Stop halts the ticker. Pending callbacks are dropped.
func (s *TickerScheduler) Stop() {
	s.once.Do(func() {
		s.ticker.Stop()
		close(s.done)
		s.queue.drain()
	})
}

// ManualScheduler fires only when told to. Tests use it for determinism;
// hosts that own their frame pacing call Fire from their own loop.
type ManualScheduler struct {
	queue    frameQueue
	canceled int
	mu       sync.Mutex
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (s *ManualScheduler) Schedule(fn func()) Handle { return s.queue.add(fn) }

func (s *ManualScheduler) Cancel(h Handle) {
	if s.queue.remove(h) {
		s.mu.Lock()
		s.canceled++
		s.mu.Unlock()
	}
}

// Fire runs every callback pending at the time of the call and reports
// how many ran.
func (s *ManualScheduler) Fire() int {
	fns := s.queue.drain()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Pending reports the number of outstanding callbacks.
func (s *ManualScheduler) Pending() int { return s.queue.len() }

// Canceled reports how many outstanding callbacks were cancelled.
func (s *ManualScheduler) Canceled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canceled
}
