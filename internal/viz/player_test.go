package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/animato/internal/feed"
	"github.com/san-kum/animato/internal/playback"
	"github.com/san-kum/animato/internal/render"
	"github.com/san-kum/animato/internal/scene"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testScene(id string) *scene.Scene {
	return &scene.Scene{
		ID:       id,
		Duration: 2000,
		Frames: []scene.Frame{{Objects: []scene.Object{{
			ID:   "dot",
			Type: scene.Circle,
			Properties: scene.Props{
				"x": scene.Number(20), "y": scene.Number(15),
				"radius": scene.Number(10), "fill": scene.String("#000000"),
			},
		}}}},
	}
}

func testOptions() Options {
	return Options{
		Render:    render.Options{Width: 40, Height: 30},
		Tick:      16,
		FrameRate: 30,
		Cols:      10,
		Rows:      5,
	}
}

func newTestModel(t *testing.T, sc *scene.Scene, opts Options) Model {
	t.Helper()
	m, err := NewModel(sc, opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestPlayerLoadsStopped(t *testing.T) {
	m := newTestModel(t, testScene("a"), testOptions())
	st := m.State()
	if st.Status != playback.Stopped || st.CurrentTime != 0 || st.Duration != 2000 {
		t.Errorf("state = %+v", st)
	}
	if m.frame.stats.Drawn != 1 {
		t.Errorf("initial frame not rendered: %+v", m.frame.stats)
	}
	if !strings.ContainsFunc(m.canvas.String(), func(r rune) bool { return r > blank }) {
		t.Error("preview is empty")
	}
}

func TestPlayerKeys(t *testing.T) {
	m := newTestModel(t, testScene("a"), testOptions())

	m, _ = update(t, m, key(" "))
	if !m.State().IsPlaying {
		t.Fatal("space should start playback")
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if got := m.State().CurrentTime; got != 32 {
		t.Errorf("after one refresh time = %v, want 32", got)
	}

	m, _ = update(t, m, key("]"))
	if got := m.State().CurrentTime; got != 532 {
		t.Errorf("after seek forward time = %v, want 532", got)
	}
	if !m.State().IsPlaying {
		t.Error("seek should keep playing")
	}

	m, _ = update(t, m, key(" "))
	if m.State().Status != playback.Paused {
		t.Errorf("space should pause, got %s", m.State().Status)
	}

	m, _ = update(t, m, key("["))
	m, _ = update(t, m, key("["))
	if got := m.State().CurrentTime; got != 0 {
		t.Errorf("seek back clamps to 0, got %v", got)
	}

	m, _ = update(t, m, key("r"))
	if st := m.State(); st.Status != playback.Paused || st.CurrentTime != 0 {
		t.Errorf("restart state = %+v", st)
	}
}

func TestPlayerTickWhilePausedIsIdle(t *testing.T) {
	m := newTestModel(t, testScene("a"), testOptions())
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next refresh")
	}
	if m.State().CurrentTime != 0 {
		t.Errorf("stopped clock advanced to %v", m.State().CurrentTime)
	}
}

func TestPlayerThemeAndHelp(t *testing.T) {
	m := newTestModel(t, testScene("a"), testOptions())
	m, _ = update(t, m, key("t"))
	if Themes[m.theme].Name != "retro" {
		t.Errorf("theme = %s, want retro", Themes[m.theme].Name)
	}
	m, _ = update(t, m, key("?"))
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}
}

func TestPlayerNoScene(t *testing.T) {
	m := newTestModel(t, nil, testOptions())
	m, _ = update(t, m, key(" "))
	if !strings.Contains(m.View(), "no scene loaded") {
		t.Error("missing no-scene notice")
	}
	if !m.frame.stats.Placeholder {
		t.Error("expected placeholder frame")
	}
}

func TestPlayerFeed(t *testing.T) {
	hub := feed.NewHub()
	opts := testOptions()
	opts.Feed = hub
	m := newTestModel(t, testScene("first"), opts)
	if hub.Count(feed.SceneLoaded) != 1 {
		t.Fatal("player did not subscribe")
	}

	m, _ = update(t, m, key(" "))
	hub.Publish(feed.Event{Name: feed.SceneLoaded, Scene: testScene("second")})
	msg := waitScene(m.incoming)()
	m, cmd := update(t, m, msg)
	if cmd == nil {
		t.Error("player stopped listening to the feed")
	}
	if m.loop.Scene().ID != "second" {
		t.Errorf("scene = %s, want second", m.loop.Scene().ID)
	}
	if st := m.State(); st.Status != playback.Stopped || st.CurrentTime != 0 {
		t.Errorf("replacement should reset, got %+v", st)
	}
	if !strings.Contains(m.View(), "loaded second") {
		t.Error("missing load notice")
	}

	m, cmd = update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if hub.Count(feed.SceneLoaded) != 0 {
		t.Error("player did not unsubscribe on quit")
	}
}

func TestPlayerAutoplay(t *testing.T) {
	opts := testOptions()
	opts.Autoplay = true
	m := newTestModel(t, testScene("a"), opts)
	if !m.State().IsPlaying {
		t.Error("autoplay should start playback")
	}
}

func TestTicksPerFrame(t *testing.T) {
	tests := []struct {
		frameRate int
		tick      float64
		want      int
	}{
		{30, 16, 2},
		{60, 16, 1},
		{10, 16, 6},
		{120, 16, 1},
	}
	for _, tt := range tests {
		m := Model{opts: Options{FrameRate: tt.frameRate, Tick: tt.tick}}
		if got := m.ticksPerFrame(); got != tt.want {
			t.Errorf("ticksPerFrame(%d fps, %v ms) = %d, want %d", tt.frameRate, tt.tick, got, tt.want)
		}
	}
}

func TestMenu(t *testing.T) {
	m := NewMenu(testOptions())
	if m.Selected() != "bounce" {
		t.Errorf("first preset = %s", m.Selected())
	}
	next, _ := m.Update(key("j"))
	m = next.(Menu)
	if m.Selected() != "gallery" {
		t.Errorf("after j selected = %s", m.Selected())
	}
	if !strings.Contains(m.View(), "gallery") {
		t.Error("menu view missing presets")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Menu)
	if !m.Playing() || cmd == nil {
		t.Fatal("enter should open the player")
	}
	defer m.player.Close()
	if !m.player.State().IsPlaying {
		t.Error("menu should autoplay the preset")
	}
	if m.player.loop.Scene().ID != "gallery" {
		t.Errorf("playing %s", m.player.loop.Scene().ID)
	}
}
