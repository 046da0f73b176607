package viz

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/san-kum/animato/internal/feed"
	"github.com/san-kum/animato/internal/geom"
	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/playback"
	"github.com/san-kum/animato/internal/render"
	"github.com/san-kum/animato/internal/scene"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	defaultSeekStep = 500.0
	costHistory     = 120
)

type Options struct {
	Render    render.Options
	Tick      float64
	FrameRate int
	Theme     string
	Cols      int
	Rows      int
	SeekStep  float64
	Autoplay  bool
	// Feed, when set, replaces the playing scene with every scene it
	// publishes.
	Feed *feed.Hub
}

type TickMsg time.Time

type sceneMsg struct{ scene *scene.Scene }

// frameState is the latest clock snapshot. The clock's render callback
// only records it; rasterising happens once per Update.
type frameState struct {
	sc    *scene.Scene
	st    playback.State
	dirty bool
	stats render.Stats
}

// Model is the Bubble Tea player for one scene at a time.
type Model struct {
	opts     Options
	loop     *playback.Loop
	sched    *playback.ManualScheduler
	img      *render.Image
	bg       color.Color
	canvas   *Canvas
	frame    *frameState
	theme    int
	styles   styles
	showHelp bool
	notice   string
	incoming chan *scene.Scene
	unsub    func()
	costs    []float64
}

func NewModel(sc *scene.Scene, opts Options) (Model, error) {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	if opts.SeekStep <= 0 {
		opts.SeekStep = defaultSeekStep
	}
	if opts.Cols <= 0 {
		opts.Cols = defaultCols
	}
	if opts.Rows <= 0 {
		opts.Rows = defaultRows
	}

	img, err := render.NewImage(opts.Render)
	if err != nil {
		return Model{}, err
	}
	bg, ok := geom.ParseColor(img.Options().Background)
	if !ok {
		bg = gg.White
	}
	bg.A = 1

	fs := &frameState{}
	clock := playback.NewClock(func(sc *scene.Scene, st playback.State) {
		fs.sc, fs.st, fs.dirty = sc, st, true
	}, opts.Tick)
	sched := playback.NewManualScheduler()

	m := Model{
		opts:   opts,
		loop:   playback.NewLoop(clock, sched),
		sched:  sched,
		img:    img,
		bg:     bg.Color(),
		canvas: NewCanvas(opts.Cols, opts.Rows),
		frame:  fs,
		theme:  ThemeIndex(opts.Theme),
	}
	m.styles = newStyles(Themes[m.theme])

	if opts.Feed != nil {
		ch := make(chan *scene.Scene, 4)
		m.incoming = ch
		m.unsub = opts.Feed.Subscribe(feed.SceneLoaded, func(ev feed.Event) {
			select {
			case ch <- ev.Scene:
			default:
				logging.Logger().Warn("player busy, dropping scene", "path", ev.Path)
			}
		})
	}

	m.load(sc)
	m.refresh()
	return m, nil
}

func (m *Model) load(sc *scene.Scene) {
	m.loop.Replace(sc)
	if sc != nil && m.opts.Autoplay {
		if err := m.loop.Play(); err != nil {
			m.notice = err.Error()
		}
	}
}

// State reports the playback state.
func (m Model) State() playback.State { return m.loop.State() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FrameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// ticksPerFrame is how many clock ticks one screen refresh covers, so
// that playback runs at wall-clock speed.
func (m Model) ticksPerFrame() int {
	interval := 1000 / float64(m.opts.FrameRate)
	tick := m.opts.Tick
	if tick <= 0 {
		tick = playback.DefaultTick
	}
	return max(1, int(math.Round(interval/tick)))
}

func waitScene(ch <-chan *scene.Scene) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		sc, ok := <-ch
		if !ok {
			return nil
		}
		return sceneMsg{scene: sc}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), waitScene(m.incoming))
}

// Update handles input, frame ticks and incoming scenes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case TickMsg:
		for i := m.ticksPerFrame(); i > 0; i-- {
			if m.sched.Fire() == 0 {
				break
			}
		}
		cmd = m.tick()
	case sceneMsg:
		m.load(msg.scene)
		m.notice = "loaded " + msg.scene.ID
		cmd = waitScene(m.incoming)
	case tea.WindowSizeMsg:
		cols := max(msg.Width-panelWidth-8, 10)
		rows := max(msg.Height-4, 4)
		if cols != m.canvas.Width || rows != m.canvas.Height {
			m.canvas = NewCanvas(cols, rows)
			m.frame.dirty = true
		}
	}
	m.refresh()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.Close()
		return tea.Quit
	case " ":
		if err := m.loop.Toggle(); err != nil {
			if errors.Is(err, playback.ErrNoScene) {
				m.notice = "no scene loaded"
			} else {
				m.notice = err.Error()
			}
		}
	case "r":
		m.loop.Restart()
	case "[", "left":
		m.loop.Seek(m.loop.State().CurrentTime - m.opts.SeekStep)
	case "]", "right":
		m.loop.Seek(m.loop.State().CurrentTime + m.opts.SeekStep)
	case "0", "home":
		m.loop.Seek(0)
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = newStyles(Themes[m.theme])
	case "?":
		m.showHelp = !m.showHelp
	}
	return nil
}

// Close stops playback and leaves the feed. It is safe to call twice.
func (m *Model) Close() {
	m.loop.Close()
	if m.unsub != nil {
		m.unsub()
	}
}

func (m *Model) refresh() {
	fs := m.frame
	if !fs.dirty {
		return
	}
	start := time.Now()
	fs.stats = m.img.Render(fs.sc, fs.st)
	m.canvas.FromImage(m.img.Image(), m.bg, DefaultThreshold)
	fs.dirty = false

	m.costs = append(m.costs, float64(time.Since(start).Microseconds())/1000)
	if len(m.costs) > costHistory {
		m.costs = m.costs[len(m.costs)-costHistory:]
	}
}

// View renders the preview and status panel.
func (m Model) View() string {
	st, s := m.frame.st, m.styles
	title := "animato"
	if sc := m.frame.sc; sc != nil {
		title = sc.ID
		if sc.Title != "" {
			title = sc.Title
		}
	}

	var b strings.Builder
	b.WriteString(s.title.Render(strings.ToUpper(title)) + "\n")
	b.WriteString(s.status[st.Status].Render(strings.ToUpper(st.Status.String())) + "\n\n")
	row := func(label, value string) {
		b.WriteString(s.label.Render(label) + s.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%s / %s", playback.FormatClock(st.CurrentTime), playback.FormatClock(st.Duration)))
	row("", ProgressBar(st.Progress, panelWidth-14))
	row("Drawn", fmt.Sprintf("%d", m.frame.stats.Drawn))
	row("Skipped", fmt.Sprintf("%d", m.frame.stats.Skipped))
	row("Theme", Themes[m.theme].Name)
	if len(m.costs) > 1 {
		row("Render", fmt.Sprintf("%.1fms", m.costs[len(m.costs)-1]))
		row("", Sparkline(m.costs, panelWidth-14))
	}
	if m.notice != "" {
		b.WriteString("\n" + s.err.Render(m.notice) + "\n")
	}
	b.WriteString(s.help.Render("SP:Play/Pause R:Restart Q:Quit\n[ ]:Seek T:Theme ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		s.canvas.Render(m.canvas.String()),
		s.panel.Render(b.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Play/Pause               ║
║  R        - Restart from the start   ║
║  [ / ]    - Seek backward/forward    ║
║  0        - Seek to start            ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run plays sc in the terminal until the user quits.
func Run(sc *scene.Scene, opts Options) error {
	m, err := NewModel(sc, opts)
	if err != nil {
		return err
	}
	defer m.Close()
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
