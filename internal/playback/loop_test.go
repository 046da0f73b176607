package playback_test

import (
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/animato/internal/playback"
	"github.com/san-kum/animato/internal/scene"
)

var _ = Describe("Loop", func() {
	var (
		log   *renderLog
		sched *playback.ManualScheduler
		loop  *playback.Loop
	)

	BeforeEach(func() {
		log = &renderLog{}
		sched = playback.NewManualScheduler()
		clock := playback.NewClock(log.render, 100)
		clock.Load(sceneOf(1000))
		loop = playback.NewLoop(clock, sched)
	})

	It("keeps one frame pending while playing", func() {
		Expect(loop.Play()).To(Succeed())
		Expect(sched.Pending()).To(Equal(1))

		Expect(sched.Fire()).To(Equal(1))
		Expect(loop.State().CurrentTime).To(Equal(100.0))
		Expect(sched.Pending()).To(Equal(1))
	})

	It("stops scheduling once the clock ends", func() {
		Expect(loop.Play()).To(Succeed())
		for i := 0; i < 20 && sched.Pending() > 0; i++ {
			sched.Fire()
		}
		Expect(loop.State().Status).To(Equal(playback.Ended))
		Expect(sched.Pending()).To(BeZero())
	})

	It("cancels the pending frame on pause", func() {
		Expect(loop.Play()).To(Succeed())
		loop.Pause()
		Expect(sched.Pending()).To(BeZero())
		Expect(sched.Canceled()).To(Equal(1))

		renders := log.count()
		Expect(sched.Fire()).To(BeZero())
		Expect(log.count()).To(Equal(renders))
	})

	It("cancels the pending frame on restart", func() {
		Expect(loop.Play()).To(Succeed())
		sched.Fire()
		loop.Restart()
		Expect(sched.Pending()).To(BeZero())
		Expect(loop.State().CurrentTime).To(BeZero())
	})

	It("cancels the pending frame and resets on replace", func() {
		Expect(loop.Play()).To(Succeed())
		sched.Fire()
		next := sceneOf(250)
		loop.Replace(next)

		Expect(sched.Pending()).To(BeZero())
		Expect(sched.Canceled()).To(Equal(1))
		Expect(loop.State()).To(Equal(playback.State{Status: playback.Stopped, Duration: 250}))
		Expect(loop.Scene()).To(BeIdenticalTo(next))
	})

	It("never renders after close", func() {
		Expect(loop.Play()).To(Succeed())
		loop.Close()
		Expect(sched.Pending()).To(BeZero())

		renders := log.count()
		sched.Fire()
		loop.Seek(500)
		loop.Pause()
		Expect(loop.Play()).To(Succeed())
		loop.Replace(sceneOf(10))
		Expect(log.count()).To(Equal(renders))
	})

	It("ignores a stale callback that fires after cancellation", func() {
		var stale func()
		capture := &capturingScheduler{inner: sched, capture: func(fn func()) { stale = fn }}
		clock := playback.NewClock(log.render, 100)
		clock.Load(sceneOf(1000))
		l := playback.NewLoop(clock, capture)

		Expect(l.Play()).To(Succeed())
		l.Pause()
		renders := log.count()
		stale()
		Expect(log.count()).To(Equal(renders))
		Expect(l.State().CurrentTime).To(BeZero())
	})

	It("toggles between playing and paused", func() {
		Expect(loop.Toggle()).To(Succeed())
		Expect(loop.State().IsPlaying).To(BeTrue())
		Expect(loop.Toggle()).To(Succeed())
		Expect(loop.State().Status).To(Equal(playback.Paused))
	})

	It("runs to the end on a wall-clock ticker", func() {
		ticker := playback.NewTickerScheduler(500)
		DeferCleanup(ticker.Stop)

		var renders atomic.Int32
		clock := playback.NewClock(func(*scene.Scene, playback.State) { renders.Add(1) }, 100)
		clock.Load(sceneOf(300))
		l := playback.NewLoop(clock, ticker)
		DeferCleanup(l.Close)

		Expect(l.Play()).To(Succeed())
		Eventually(func() playback.Status { return l.State().Status }).
			WithTimeout(2 * time.Second).
			Should(Equal(playback.Ended))
		// Load, play, then three ticks.
		Expect(renders.Load()).To(BeNumerically("==", 5))
	})
})

// capturingScheduler records the most recent callback so a test can fire
// it after the loop has cancelled it.
type capturingScheduler struct {
	inner   playback.Scheduler
	capture func(func())
}

func (c *capturingScheduler) Schedule(fn func()) playback.Handle {
	c.capture(fn)
	return c.inner.Schedule(fn)
}

func (c *capturingScheduler) Cancel(h playback.Handle) { c.inner.Cancel(h) }
