package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starlinks/internal/config"
	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/input"
	"github.com/vovakirdan/starlinks/internal/platform/links"
	"github.com/vovakirdan/starlinks/internal/render"
	"github.com/vovakirdan/starlinks/internal/sim"
)

// Options configures a terminal session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // Screen size in cells; cell size comes from Config.Field
	Links   *links.Sink        // Optional
	Logger  *log.Logger

	// Key latch windows; zero uses DefaultFirstHold and DefaultRepeatHold
	FirstHold  time.Duration
	RepeatHold time.Duration
}

// Model is the Bubble Tea model for one starlinks session.
type Model struct {
	engine   *sim.Engine
	controls *input.Controls
	frames   *sim.FrameQueue
	canvas   *Canvas
	latch    *KeyLatch
	links    *links.Sink
	keys     KeyMap
	help     help.Model
	runtime  core.RuntimeConfig
	logger   *log.Logger
	now      func() time.Time
	start    time.Time
	quitting bool
}

// NewModel creates a session sized to opts.Runtime.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.CellW = opts.Config.Field.CellWidth
	rt.CellH = opts.Config.Field.CellHeight
	rt = fieldRuntime(rt)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fw, fh := rt.FieldSize()
	controls, err := input.NewControls(opts.Config.InputOptions(), fw, fh)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	var opener sim.LinkOpener
	if opts.Links != nil {
		opener = opts.Links
	}

	frames := &sim.FrameQueue{}
	engine := sim.New(opts.Config, rt, sim.Options{
		Controls:  controls,
		Scheduler: frames,
		Links:     opener,
		Logger:    logger,
	})

	first, repeat := opts.FirstHold, opts.RepeatHold
	if first <= 0 {
		first = DefaultFirstHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		engine:   engine,
		controls: controls,
		frames:   frames,
		canvas:   NewCanvas(core.NewScreen(rt.ScreenW, rt.ScreenH), rt.CellW, rt.CellH),
		latch:    NewKeyLatch(first, repeat),
		links:    opts.Links,
		keys:     DefaultKeyMap(),
		help:     h,
		runtime:  rt,
		logger:   logger,
		now:      time.Now,
		start:    time.Now(),
	}, nil
}

// fieldRuntime reserves the bottom row for the footer.
func fieldRuntime(rt core.RuntimeConfig) core.RuntimeConfig {
	if rt.ScreenH > 1 {
		rt.ScreenH--
	}
	return rt
}

// Engine returns the session's engine.
func (m Model) Engine() *sim.Engine {
	return m.engine
}

// Init starts the engine and the tick loop.
func (m Model) Init() tea.Cmd {
	m.engine.Start()
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.latch.Clear()
		m.controls.Push(input.Blur())
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.engine.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if k, ok := m.keys.ControlKey(msg); ok {
		if m.latch.Press(k, m.now()) {
			m.controls.Push(input.KeyDown(k))
		}
	}
	return m, nil
}

// handleMouse turns the mouse into pointer 0.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if tea.MouseEvent(msg).IsWheel() {
		return
	}
	pos := m.runtime.ToField(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		m.controls.Push(input.PointerDown(0, pos.X, pos.Y))
	case tea.MouseActionMotion:
		m.controls.Push(input.PointerMove(0, pos.X, pos.Y))
	case tea.MouseActionRelease:
		m.controls.Push(input.PointerUp(0, pos.X, pos.Y))
	}
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.runtime = fieldRuntime(m.runtime)

	m.canvas.Screen().Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.engine.Resize(m.runtime)
	fw, fh := m.runtime.FieldSize()
	m.controls.Push(input.Resize(fw, fh))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick releases expired keys and runs queued frames.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.latch.Expire(t) {
		m.controls.Push(input.KeyUp(k))
	}
	m.frames.Fire(t.Sub(m.start))

	if !m.engine.Running() {
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// draw renders the current snapshot into the canvas.
func (m Model) draw() {
	snap := m.engine.Snapshot()
	m.canvas.Reset()
	render.Frame(m.canvas, &snap, nil, render.Overlay{
		Widgets: m.controls.Widgets(),
		Lines:   render.Instructions(m.controls.Scheme().ID()),
	})
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(config.Dir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("starlinks_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// footer renders the status and help row.
func (m Model) footer() string {
	line := helpStyle.Render(m.help.View(m.keys))
	if m.links == nil {
		return line
	}
	if last, ok := m.links.Last(); ok {
		return statusStyle.Render(fmt.Sprintf("→ %s %s", last.Tag, last.URL)) + "  " + line
	}
	return line
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.canvas.Screen()) + "\n" + m.footer()
}

// programOptions are the Bubble Tea options every game session runs with.
// Focus reports drive the Blur reset of held keys and pointers.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, programOptions()...)

	_, err = p.Run()
	model.engine.Stop()
	return err
}
