// Package playback owns the playback cursor of a loaded scene and the
// frame loop that advances it.
package playback

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/animato/internal/scene"
)

// ErrNoScene is returned by Play when nothing is loaded.
var ErrNoScene = errors.New("playback: no scene loaded")

// DefaultTick is the logical time added per tick, in milliseconds.
const DefaultTick = 16.0

type Status int

const (
	Stopped Status = iota
	Paused
	Playing
	Ended
)

func (s Status) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// State is a read-only snapshot of the playback cursor.
type State struct {
	Status      Status
	IsPlaying   bool
	CurrentTime float64
	Duration    float64
	Progress    float64
}

func newState(status Status, t, duration float64) State {
	st := State{
		Status:      status,
		IsPlaying:   status == Playing,
		CurrentTime: t,
		Duration:    duration,
	}
	if duration > 0 {
		st.Progress = t / duration
	}
	return st
}

// StateAt is the paused state of sc at time t, clamped to its duration.
func StateAt(sc *scene.Scene, t float64) State {
	var d float64
	if sc != nil {
		d = sc.Duration
	}
	t = clampTime(t, d)
	if t == 0 {
		return newState(Stopped, 0, d)
	}
	return newState(Paused, t, d)
}

func clampTime(t, duration float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > duration {
		return duration
	}
	return t
}

// RenderFunc draws a scene at a state.
type RenderFunc func(*scene.Scene, State)

// Clock is the playback state machine. Every control call and every tick
// invokes the render callback exactly once. Clock is not safe for
// concurrent use; Loop serialises access.
type Clock struct {
	scene  *scene.Scene
	state  State
	tick   float64
	render RenderFunc
}

// NewClock returns a stopped clock with no scene. A non-positive tick
// selects DefaultTick.
func NewClock(render RenderFunc, tick float64) *Clock {
	if tick <= 0 {
		tick = DefaultTick
	}
	if render == nil {
		render = func(*scene.Scene, State) {}
	}
	return &Clock{tick: tick, render: render}
}

func (c *Clock) State() State          { return c.state }
func (c *Clock) Scene() *scene.Scene   { return c.scene }
func (c *Clock) TickInterval() float64 { return c.tick }

func (c *Clock) draw() { c.render(c.scene, c.state) }

// Load replaces the scene and resets the cursor to the start, stopped.
func (c *Clock) Load(sc *scene.Scene) {
	c.scene = sc
	var d float64
	if sc != nil {
		d = sc.Duration
	}
	c.state = newState(Stopped, 0, d)
	c.draw()
}

// Play starts playback. Playing from the end is a no-op until a seek or
// restart moves the cursor back.
func (c *Clock) Play() error {
	defer c.draw()
	if c.scene == nil {
		return ErrNoScene
	}
	if c.state.CurrentTime >= c.state.Duration {
		return nil
	}
	c.state = newState(Playing, c.state.CurrentTime, c.state.Duration)
	return nil
}

// Pause holds the cursor where it is.
func (c *Clock) Pause() {
	if c.state.Status == Playing {
		c.state = newState(Paused, c.state.CurrentTime, c.state.Duration)
	}
	c.draw()
}

// Restart stops playback and rewinds to zero without resuming.
func (c *Clock) Restart() {
	c.state = newState(Paused, 0, c.state.Duration)
	c.draw()
}

// Seek moves the cursor to t, clamped to [0, duration], keeping the
// play/pause status.
func (c *Clock) Seek(t float64) {
	t = clampTime(t, c.state.Duration)
	status := c.state.Status
	switch status {
	case Playing:
	case Stopped:
		if t > 0 {
			status = Paused
		}
	default:
		status = Paused
	}
	c.state = newState(status, t, c.state.Duration)
	c.draw()
}

// Tick advances a playing clock by one interval, ending it on reaching
// the duration.
func (c *Clock) Tick() {
	if c.state.Status == Playing {
		t := math.Min(c.state.CurrentTime+c.tick, c.state.Duration)
		status := Playing
		if t >= c.state.Duration {
			status = Ended
		}
		c.state = newState(status, t, c.state.Duration)
	}
	c.draw()
}

// FormatClock renders milliseconds as mm:ss.
func FormatClock(ms float64) string {
	if math.IsNaN(ms) || ms < 0 {
		ms = 0
	}
	s := int64(ms / 1000)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
