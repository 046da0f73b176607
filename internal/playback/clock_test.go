package playback_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/animato/internal/playback"
	"github.com/san-kum/animato/internal/scene"
)

type renderLog struct {
	scenes []*scene.Scene
	states []playback.State
}

func (r *renderLog) render(sc *scene.Scene, st playback.State) {
	r.scenes = append(r.scenes, sc)
	r.states = append(r.states, st)
}

func (r *renderLog) count() int { return len(r.states) }

func (r *renderLog) last() playback.State { return r.states[len(r.states)-1] }

func sceneOf(duration float64) *scene.Scene {
	return &scene.Scene{ID: "s", Duration: duration, Frames: []scene.Frame{{Timestamp: 0}}}
}

var _ = Describe("Clock", func() {
	var (
		log   *renderLog
		clock *playback.Clock
	)

	BeforeEach(func() {
		log = &renderLog{}
		clock = playback.NewClock(log.render, 16)
		clock.Load(sceneOf(1000))
	})

	It("loads into a stopped state at zero", func() {
		Expect(clock.State()).To(Equal(playback.State{
			Status:   playback.Stopped,
			Duration: 1000,
		}))
		Expect(log.count()).To(Equal(1))
	})

	It("resets the state when a new scene is loaded", func() {
		Expect(clock.Play()).To(Succeed())
		clock.Tick()
		clock.Tick()
		next := sceneOf(400)
		clock.Load(next)

		Expect(clock.State()).To(Equal(playback.State{Status: playback.Stopped, Duration: 400}))
		Expect(clock.Scene()).To(BeIdenticalTo(next))
		Expect(log.scenes[len(log.scenes)-1]).To(BeIdenticalTo(next))
	})

	It("renders exactly once per control call and tick", func() {
		before := log.count()
		Expect(clock.Play()).To(Succeed())
		clock.Tick()
		clock.Pause()
		clock.Seek(300)
		clock.Restart()
		clock.Tick()
		Expect(log.count() - before).To(Equal(6))
	})

	It("advances by the tick interval only while playing", func() {
		clock.Tick()
		Expect(clock.State().CurrentTime).To(BeZero())

		Expect(clock.Play()).To(Succeed())
		clock.Tick()
		clock.Tick()
		Expect(clock.State().CurrentTime).To(BeNumerically("==", 32))
		Expect(clock.State().Progress).To(BeNumerically("~", 0.032, 1e-12))
	})

	It("never exceeds the duration and ends on its own", func() {
		Expect(clock.Play()).To(Succeed())
		for i := 0; i < 100; i++ {
			clock.Tick()
		}
		st := clock.State()
		Expect(st.CurrentTime).To(Equal(1000.0))
		Expect(st.IsPlaying).To(BeFalse())
		Expect(st.Status).To(Equal(playback.Ended))
		Expect(st.Progress).To(Equal(1.0))
	})

	It("treats play from the end as a no-op", func() {
		clock.Seek(1000)
		Expect(clock.Play()).To(Succeed())
		Expect(clock.State().IsPlaying).To(BeFalse())

		clock.Seek(500)
		Expect(clock.Play()).To(Succeed())
		Expect(clock.State().IsPlaying).To(BeTrue())
	})

	DescribeTable("restart always yields paused at zero",
		func(prepare func(*playback.Clock)) {
			prepare(clock)
			clock.Restart()
			st := clock.State()
			Expect(st.CurrentTime).To(BeZero())
			Expect(st.Progress).To(BeZero())
			Expect(st.IsPlaying).To(BeFalse())
			Expect(st.Status).To(Equal(playback.Paused))
		},
		Entry("from stopped", func(c *playback.Clock) {}),
		Entry("from playing", func(c *playback.Clock) {
			Expect(c.Play()).To(Succeed())
			c.Tick()
		}),
		Entry("from paused", func(c *playback.Clock) { c.Seek(700) }),
		Entry("from ended", func(c *playback.Clock) {
			Expect(c.Play()).To(Succeed())
			for i := 0; i < 200; i++ {
				c.Tick()
			}
		}),
	)

	DescribeTable("seek then pause equals pause then seek",
		func(prepare func(*playback.Clock)) {
			other := playback.NewClock(nil, 16)
			other.Load(sceneOf(1000))
			prepare(clock)
			prepare(other)

			clock.Seek(500)
			clock.Pause()
			other.Pause()
			other.Seek(500)

			Expect(clock.State()).To(Equal(other.State()))
			Expect(clock.State().CurrentTime).To(Equal(500.0))
		},
		Entry("from stopped", func(c *playback.Clock) {}),
		Entry("from playing", func(c *playback.Clock) { Expect(c.Play()).To(Succeed()) }),
		Entry("from paused", func(c *playback.Clock) { c.Seek(100) }),
	)

	It("clamps seeks into the scene", func() {
		clock.Seek(-50)
		Expect(clock.State().CurrentTime).To(BeZero())
		clock.Seek(5000)
		Expect(clock.State().CurrentTime).To(Equal(1000.0))
	})

	It("keeps playing across a seek", func() {
		Expect(clock.Play()).To(Succeed())
		clock.Seek(200)
		Expect(clock.State().IsPlaying).To(BeTrue())
		Expect(clock.State().CurrentTime).To(Equal(200.0))
	})

	It("defines progress as zero for an empty duration", func() {
		clock.Load(sceneOf(0))
		clock.Seek(10)
		Expect(clock.State().Progress).To(BeZero())
		Expect(clock.Play()).To(Succeed())
		Expect(clock.State().IsPlaying).To(BeFalse())
	})

	It("refuses to play without a scene", func() {
		empty := playback.NewClock(log.render, 0)
		before := log.count()
		Expect(empty.Play()).To(MatchError(playback.ErrNoScene))
		Expect(log.count()).To(Equal(before + 1))
		Expect(empty.TickInterval()).To(Equal(playback.DefaultTick))
	})
})

var _ = Describe("FormatClock", func() {
	DescribeTable("formats milliseconds as mm:ss",
		func(ms float64, want string) {
			Expect(playback.FormatClock(ms)).To(Equal(want))
		},
		Entry("zero", 0.0, "00:00"),
		Entry("sub-second", 999.0, "00:00"),
		Entry("seconds", 3000.0, "00:03"),
		Entry("minutes", 125_500.0, "02:05"),
		Entry("negative", -10.0, "00:00"),
	)
})
