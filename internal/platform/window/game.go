// Package window hosts starlinks in a desktop window using ebiten. The
// field is measured in window pixels.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/starlinks/internal/config"
	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/input"
	"github.com/vovakirdan/starlinks/internal/platform/links"
	"github.com/vovakirdan/starlinks/internal/render"
	"github.com/vovakirdan/starlinks/internal/sim"
)

// Options configures a window session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // Initial window size in pixels
	Links   *links.Sink        // Optional
	IconDir string             // Empty draws glyphs for every target
	Title   string
	Logger  *log.Logger
}

// Game implements ebiten.Game for one starlinks session.
type Game struct {
	engine   *sim.Engine
	controls *input.Controls
	frames   *sim.FrameQueue
	tracker  input.Tracker
	poller   poller
	surface  Surface
	textures render.Textures
	links    *links.Sink
	runtime  core.RuntimeConfig
	logger   *log.Logger
	start    time.Time
}

// NewGame creates a session sized to opts.Runtime.
func NewGame(opts Options) (*Game, error) {
	rt := opts.Runtime
	rt.CellW, rt.CellH = 1, 1
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fw, fh := rt.FieldSize()
	controls, err := input.NewControls(opts.Config.InputOptions(), fw, fh)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
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

	size := render.IconSize(opts.Config.Targets.Radius)
	return &Game{
		engine:   engine,
		controls: controls,
		frames:   frames,
		textures: LoadTextures(opts.IconDir, opts.Config.Targets.Links, size, logger),
		links:    opts.Links,
		runtime:  rt,
		logger:   logger,
		start:    time.Now(),
	}, nil
}

// Engine returns the session's engine.
func (g *Game) Engine() *sim.Engine {
	return g.engine
}

// Update feeds input to the controls and runs queued frames.
func (g *Game) Update() error {
	if quitPressed() {
		g.engine.Stop()
		return ebiten.Termination
	}

	for _, ev := range g.tracker.Diff(g.poller.poll(g.runtime.ScreenW, g.runtime.ScreenH)) {
		g.controls.Push(ev)
	}
	g.frames.Fire(time.Since(g.start))
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.engine.Snapshot()
	g.surface.begin(screen)
	render.Frame(&g.surface, &snap, g.textures, render.Overlay{
		Widgets: g.controls.Widgets(),
		Lines:   render.Instructions(g.controls.Scheme().ID()),
	})

	if g.links == nil {
		return
	}
	if last, ok := g.links.Last(); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("> %s %s", last.Tag, last.URL), textMargin, g.runtime.ScreenH-textMargin-glyphH)
	}
}

const textMargin = 10

// Layout follows the window size. Controls learn about it from the next poll.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.runtime.ScreenW || outsideHeight != g.runtime.ScreenH {
		g.runtime.ScreenW, g.runtime.ScreenH = outsideWidth, outsideHeight
		g.engine.Resize(g.runtime)
		g.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = "starlinks"
	}
	ebiten.SetWindowSize(g.runtime.ScreenW, g.runtime.ScreenH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.runtime.TickRate > 0 {
		ebiten.SetTPS(g.runtime.TickRate)
	}

	g.engine.Start()
	defer g.engine.Stop()
	return ebiten.RunGame(g)
}
