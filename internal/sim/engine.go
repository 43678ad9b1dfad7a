// Package sim runs the starlinks simulation: it applies control intent to the
// ship, spawns and retires projectiles, drifts the link targets, updates
// particles and resolves projectile hits.
//
// The engine is single-threaded. Frames come from a host Scheduler and
// each frame completes before the next one is requested.
package sim

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starlinks/internal/config"
	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/effects"
	"github.com/vovakirdan/starlinks/internal/entity"
	"github.com/vovakirdan/starlinks/internal/input"
)

// State is the lifecycle state of the loop.
type State uint8

const (
	Stopped State = iota
	Running
)

// String returns the state name.
func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// IntentSource is polled once per frame for the ship's controls.
// *input.Controls satisfies it.
type IntentSource interface {
	RotationIntent() input.Rotation
	ThrustIntent() bool
	FireIntent() bool
}

// headingAttacher is implemented by intent sources that steer relative to
// the ship's heading.
type headingAttacher interface {
	Attach(h input.HeadingSource)
}

// LinkOpener receives the external reference of a target that was hit.
type LinkOpener interface {
	OpenLink(tag, url string)
}

// LinkOpenerFunc adapts a function to LinkOpener.
type LinkOpenerFunc func(tag, url string)

// OpenLink calls f(tag, url).
func (f LinkOpenerFunc) OpenLink(tag, url string) { f(tag, url) }

// Options wires the engine to its host.
type Options struct {
	Controls  IntentSource
	Scheduler Scheduler
	Links     LinkOpener
	OnFrame   func(e *Engine) // Called after each scheduled frame's step
	Logger    *log.Logger
}

// Engine owns the ship, projectiles, targets and particles.
type Engine struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	opts    Options
	logger  *log.Logger
	damping entity.Damping

	rng         *rand.Rand
	player      *entity.Player
	projectiles []entity.Projectile
	targets     []entity.Target
	particles   *effects.System

	width, height float64
	clock         float64
	frame         uint64

	state      State
	generation uint64
	lastFrame  time.Duration
	haveLast   bool
}

// New creates a stopped engine for the field described by rt and resets it.
func New(cfg config.Config, rt core.RuntimeConfig, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		cfg:     cfg,
		runtime: rt,
		opts:    opts,
		logger:  logger,
		damping: cfg.Physics.DampingModel(),
	}
	e.width, e.height = rt.FieldSize()
	e.Reset()
	return e
}

// Reset starts a fresh session: ship at the field centre, one target per
// configured link at a random position, no projectiles or particles.
// The lifecycle state is unchanged.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewSource(e.runtime.Seed))
	e.particles = effects.New(e.cfg.Particles.Effects(), e.rng.Int63())

	e.player = entity.NewPlayer(core.V(e.width/2, e.height/2), e.cfg.Physics.ShipRadius)
	if a, ok := e.opts.Controls.(headingAttacher); ok {
		a.Attach(e.player)
	}

	e.projectiles = e.projectiles[:0]
	e.targets = e.targets[:0]
	for _, link := range e.cfg.Targets.EntityLinks() {
		e.targets = append(e.targets, e.spawnTarget(link))
	}

	e.clock = 0
	e.frame = 0
}

func (e *Engine) spawnTarget(link entity.Link) entity.Target {
	tc := e.cfg.Targets
	pos := core.V(e.rng.Float64()*e.width, e.rng.Float64()*e.height)
	vel := core.V(
		(e.rng.Float64()*2-1)*tc.MaxSpeed,
		(e.rng.Float64()*2-1)*tc.MaxSpeed,
	)
	rotation := e.rng.Float64() * 2 * math.Pi
	return entity.NewTarget(link, core.WrapPoint(pos, e.width, e.height), vel, rotation, tc.Radius, tc.Spin)
}

// Start moves the loop to Running and requests the first frame.
// Starting a running engine does nothing.
func (e *Engine) Start() {
	if e.state == Running {
		return
	}
	e.state = Running
	e.generation++
	e.haveLast = false
	e.logger.Info("engine started", "generation", e.generation)
	e.schedule()
}

// Stop moves the loop to Stopped. A frame already in flight completes its
// callback but does no work and requests no further frames. Stopping a
// stopped engine does nothing.
func (e *Engine) Stop() {
	if e.state == Stopped {
		return
	}
	e.state = Stopped
	e.logger.Info("engine stopped", "frame", e.frame)
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Running reports whether the loop is running.
func (e *Engine) Running() bool {
	return e.state == Running
}

func (e *Engine) schedule() {
	if e.opts.Scheduler == nil {
		return
	}
	gen := e.generation
	e.opts.Scheduler.RequestFrame(func(now time.Duration) {
		e.onFrame(gen, now)
	})
}

// onFrame is the scheduled callback. Callbacks from an earlier Start see a
// stale generation and exit, so a restart never runs two loops.
func (e *Engine) onFrame(gen uint64, now time.Duration) {
	if e.state != Running || gen != e.generation {
		return
	}

	dt := 0.0
	if e.haveLast {
		dt = (now - e.lastFrame).Seconds()
	}
	e.lastFrame = now
	e.haveLast = true

	e.Step(dt)
	if e.opts.OnFrame != nil {
		e.opts.OnFrame(e)
	}

	if e.state == Running && gen == e.generation {
		e.schedule()
	}
}

// ClampDT bounds a frame step to [0, limit]. NaN becomes 0.
func ClampDT(dt, limit float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

// Step advances the simulation by dt seconds (clamped). It runs regardless
// of the lifecycle state so hosts and tests can drive frames directly.
func (e *Engine) Step(dt float64) {
	dt = ClampDT(dt, e.cfg.Physics.MaxDT)
	e.clock += dt
	e.frame++

	e.steer(dt)
	e.player.Update(dt, e.cfg.Physics.Thrust, e.damping, e.width, e.height)
	e.fire()
	e.updateProjectiles(dt)
	for i := range e.targets {
		e.targets[i].Update(dt, e.width, e.height)
	}
	e.particles.Update(dt)
	e.collide()
}

func (e *Engine) steer(dt float64) {
	if e.opts.Controls == nil {
		e.player.Thrusting = false
		return
	}

	rot := e.opts.Controls.RotationIntent()
	switch rot.Mode {
	case input.RotateRate:
		e.player.Rotation = core.NormalizeAngle(e.player.Rotation + rot.Value*dt)
	case input.RotateHeading:
		e.player.Rotation = core.NormalizeAngle(rot.Value)
	case input.RotateNone:
	}

	e.player.Thrusting = e.opts.Controls.ThrustIntent()
}

func (e *Engine) fire() {
	if e.opts.Controls == nil || !e.opts.Controls.FireIntent() {
		return
	}
	w := e.cfg.Weapon
	if !e.player.CanFire(e.clock, w.Cooldown) {
		return
	}

	origin := e.player.Muzzle(w.Muzzle)
	e.projectiles = append(e.projectiles,
		entity.NewProjectile(origin, e.player.Rotation, w.Speed, w.Radius, w.Lifetime))
	e.player.LastShot = e.clock
}

func (e *Engine) updateProjectiles(dt float64) {
	alive := e.projectiles[:0]
	for i := range e.projectiles {
		p := e.projectiles[i]
		if p.Update(dt) {
			alive = append(alive, p)
		}
	}
	e.projectiles = alive
}

// Resize changes the field to the viewport described by rt and folds the
// wrapping bodies back into it.
func (e *Engine) Resize(rt core.RuntimeConfig) {
	e.runtime.ScreenW, e.runtime.ScreenH = rt.ScreenW, rt.ScreenH
	e.runtime.CellW, e.runtime.CellH = rt.CellW, rt.CellH
	e.width, e.height = e.runtime.FieldSize()

	e.player.Wrap(e.width, e.height)
	for i := range e.targets {
		e.targets[i].Wrap(e.width, e.height)
	}
}

// FieldSize returns the play-field size in field units.
func (e *Engine) FieldSize() (w, h float64) {
	return e.width, e.height
}

// Clock returns the simulated seconds since Reset.
func (e *Engine) Clock() float64 {
	return e.clock
}

// Player returns the ship. Hosts may read it between frames.
func (e *Engine) Player() *entity.Player {
	return e.player
}

// Snapshot returns a copy of the full kinematic state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:       e.frame,
		Clock:       e.clock,
		Width:       e.width,
		Height:      e.height,
		State:       e.state,
		Player:      e.player.State(),
		Projectiles: make([]entity.State, len(e.projectiles)),
		Targets:     make([]entity.State, len(e.targets)),
		Particles:   e.particles.States(),
	}
	for i := range e.projectiles {
		snap.Projectiles[i] = e.projectiles[i].State()
	}
	for i := range e.targets {
		snap.Targets[i] = e.targets[i].State()
	}
	return snap
}
