package sim

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/starlinks/internal/config"
	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/entity"
	"github.com/vovakirdan/starlinks/internal/input"
)

// stubControls is a scripted intent source.
type stubControls struct {
	rotation input.Rotation
	thrust   bool
	fire     bool
}

func (s *stubControls) RotationIntent() input.Rotation { return s.rotation }
func (s *stubControls) ThrustIntent() bool             { return s.thrust }
func (s *stubControls) FireIntent() bool               { return s.fire }

type recordedLink struct {
	tag, url string
}

type linkRecorder struct {
	opened []recordedLink
}

func (r *linkRecorder) OpenLink(tag, url string) {
	r.opened = append(r.opened, recordedLink{tag, url})
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 1000, ScreenH: 800, CellW: 1, CellH: 1, TickRate: 60, Seed: 42}
}

func newTestEngine(t *testing.T, cfg config.Config, opts Options) *Engine {
	t.Helper()
	return New(cfg, testRuntime(), opts)
}

func noTargets() config.Config {
	cfg := config.DefaultConfig()
	cfg.Targets.Links = nil
	return cfg
}

func TestNewEngine(t *testing.T) {
	cfg := config.DefaultConfig()
	e := newTestEngine(t, cfg, Options{})

	if e.State() != Stopped {
		t.Errorf("new engine state = %v, expected stopped", e.State())
	}
	snap := e.Snapshot()
	if snap.Player.Pos != core.V(500, 400) {
		t.Errorf("player at %v, expected field centre (500, 400)", snap.Player.Pos)
	}
	if len(snap.Targets) != len(cfg.Targets.Links) {
		t.Fatalf("got %d targets, expected %d", len(snap.Targets), len(cfg.Targets.Links))
	}
	for i, tg := range snap.Targets {
		if tg.Tag != cfg.Targets.Links[i].Tag || tg.URL != cfg.Targets.Links[i].URL {
			t.Errorf("target %d = %s %s, expected %+v", i, tg.Tag, tg.URL, cfg.Targets.Links[i])
		}
		if tg.Pos.X < 0 || tg.Pos.X >= 1000 || tg.Pos.Y < 0 || tg.Pos.Y >= 800 {
			t.Errorf("target %d spawned outside the field at %v", i, tg.Pos)
		}
		if math.Abs(tg.Vel.X) > cfg.Targets.MaxSpeed || math.Abs(tg.Vel.Y) > cfg.Targets.MaxSpeed {
			t.Errorf("target %d velocity %v exceeds %v per axis", i, tg.Vel, cfg.Targets.MaxSpeed)
		}
		if tg.Radius != 25 {
			t.Errorf("target %d radius = %v, expected 25", i, tg.Radius)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		rt := testRuntime()
		rt.Seed = seed
		ctl := &stubControls{rotation: input.Rate(1), thrust: true, fire: true}
		e := New(config.DefaultConfig(), rt, Options{Controls: ctl})
		for i := 0; i < 600; i++ {
			e.Step(1.0 / 60)
		}
		snap := e.Snapshot()
		return snap.Hash()
	}

	if run(7) != run(7) {
		t.Error("equal seeds and inputs produced different snapshots")
	}
	if run(7) == run(8) {
		t.Error("different seeds produced identical snapshots")
	}
}

func TestStepClampsDT(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"normal", 1.0 / 60, 1.0 / 60},
		{"stall", 5, 1.0 / 15},
		{"negative", -1, 0},
		{"nan", math.NaN(), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, noTargets(), Options{})
			e.Step(tc.dt)
			if math.Abs(e.Clock()-tc.expected) > 1e-12 {
				t.Errorf("clock after Step(%v) = %v, expected %v", tc.dt, e.Clock(), tc.expected)
			}
		})
	}
}

func TestFireCooldown(t *testing.T) {
	const dt = 1.0 / 60

	for _, seconds := range []int{1, 2, 3, 5} {
		ctl := &stubControls{fire: true}
		e := newTestEngine(t, noTargets(), Options{Controls: ctl})

		shots := 0
		last := e.Player().LastShot
		for i := 0; i < seconds*60; i++ {
			e.Step(dt)
			if e.Player().LastShot != last {
				shots++
				last = e.Player().LastShot
			}
		}

		expected := int(math.Floor(float64(seconds) / 0.25))
		if shots != expected {
			t.Errorf("%ds of held fire spawned %d projectiles, expected %d", seconds, shots, expected)
		}
	}
}

func TestFireSpawnsAtMuzzle(t *testing.T) {
	ctl := &stubControls{fire: true}
	e := newTestEngine(t, noTargets(), Options{Controls: ctl})
	e.Player().Rotation = math.Pi / 2

	e.Step(0)

	snap := e.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("got %d projectiles, expected 1", len(snap.Projectiles))
	}
	p := snap.Projectiles[0]
	if p.Pos.DistanceTo(core.V(500, 420)) > 1e-9 {
		t.Errorf("projectile at %v, expected 20 units ahead at (500, 420)", p.Pos)
	}
	if p.Vel.DistanceTo(core.V(0, 500)) > 1e-9 {
		t.Errorf("projectile velocity %v, expected (0, 500)", p.Vel)
	}
	if p.Radius != 4 || p.Life != 1.5 {
		t.Errorf("projectile radius=%v life=%v, expected 4 and 1.5", p.Radius, p.Life)
	}
}

func TestProjectileScenario(t *testing.T) {
	tests := []struct {
		name   string
		dt     float64
		frames int // Frame on which the 1.5s lifetime is spent
	}{
		{"sixteenths", 1.0 / 16, 24},
		{"60 fps", 1.0 / 60, 90},
		{"30 fps", 1.0 / 30, 45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := &stubControls{fire: true}
			e := newTestEngine(t, noTargets(), Options{Controls: ctl})
			e.Player().Pos = core.V(80, 100) // Muzzle lands on (100, 100)

			e.Step(tc.dt)
			ctl.fire = false

			for frame := 2; frame < tc.frames; frame++ {
				e.Step(tc.dt)
			}
			snap := e.Snapshot()
			if len(snap.Projectiles) != 1 {
				t.Fatalf("projectile gone before 1.5s minus one frame")
			}
			p := snap.Projectiles[0]
			expectedX := 100 + 500*float64(tc.frames-1)*tc.dt
			if math.Abs(p.Pos.X-expectedX) > 1e-6 || math.Abs(p.Pos.Y-100) > 1e-9 {
				t.Errorf("projectile at %v, expected (%v, 100)", p.Pos, expectedX)
			}

			e.Step(tc.dt)
			if n := len(e.Snapshot().Projectiles); n != 0 {
				t.Errorf("projectile still alive on frame %d (%d left)", tc.frames, n)
			}
		})
	}
}

func TestProjectilesDoNotWrap(t *testing.T) {
	ctl := &stubControls{fire: true}
	e := newTestEngine(t, noTargets(), Options{Controls: ctl})
	e.Player().Pos = core.V(990, 400)

	e.Step(1.0 / 16)
	ctl.fire = false
	e.Step(1.0 / 16)

	p := e.Snapshot().Projectiles[0]
	if p.Pos.X < 1000 {
		t.Errorf("projectile wrapped to x=%v, expected to leave the field", p.Pos.X)
	}
}

func TestFieldWrapInvariant(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Targets.MaxSpeed = 900
	ctl := &stubControls{rotation: input.Rate(2.3), thrust: true}
	e := newTestEngine(t, cfg, Options{Controls: ctl})
	e.Player().Vel = core.V(12000, -9000)

	for i := 0; i < 2000; i++ {
		e.Step(1.0 / 15)
		snap := e.Snapshot()
		check := func(what string, st entity.State) {
			if st.Pos.X < 0 || st.Pos.X >= snap.Width || st.Pos.Y < 0 || st.Pos.Y >= snap.Height {
				t.Fatalf("frame %d: %s at %v outside %vx%v", i, what, st.Pos, snap.Width, snap.Height)
			}
		}
		check("player", snap.Player)
		for _, tg := range snap.Targets {
			check(tg.Tag, tg)
		}
	}
}

func TestThrustScenario(t *testing.T) {
	ctl := &stubControls{thrust: true}
	e := newTestEngine(t, noTargets(), Options{Controls: ctl})

	for i := 0; i < 60; i++ {
		e.Step(1.0 / 60)
	}

	terminal := 0.99 * 200 * (1.0 / 60) / 0.01
	speed := e.Player().Vel.Length()
	if speed <= 0 || speed >= terminal {
		t.Errorf("speed after 1s of thrust = %v, expected in (0, %v)", speed, terminal)
	}
	if !e.Snapshot().Player.Thrusting {
		t.Error("snapshot should report thrusting")
	}
}

func TestRotationIntents(t *testing.T) {
	ctl := &stubControls{rotation: input.Rate(2)}
	e := newTestEngine(t, noTargets(), Options{Controls: ctl})

	e.Step(0.05)
	if math.Abs(e.Player().Rotation-0.1) > 1e-12 {
		t.Errorf("rate intent: rotation = %v, expected 0.1", e.Player().Rotation)
	}

	ctl.rotation = input.Heading(-1.2)
	e.Step(0.05)
	if math.Abs(e.Player().Rotation+1.2) > 1e-12 {
		t.Errorf("heading intent: rotation = %v, expected -1.2", e.Player().Rotation)
	}

	ctl.rotation = input.Rotation{}
	e.Step(0.05)
	if math.Abs(e.Player().Rotation+1.2) > 1e-12 {
		t.Errorf("no intent: rotation changed to %v", e.Player().Rotation)
	}
}

func TestEngineAttachesHeadingSource(t *testing.T) {
	opts := input.DefaultOptions()
	opts.Scheme = "joystick"
	ctl, err := input.NewControls(opts, 1000, 800)
	if err != nil {
		t.Fatal(err)
	}
	e := newTestEngine(t, noTargets(), Options{Controls: ctl})
	e.Player().Rotation = math.Pi / 2

	// Stick pushed straight right; ship points down, so it must turn back.
	ctl.Push(input.PointerDown(0, 70, 730))
	ctl.Push(input.PointerMove(0, 170, 730))

	rot := ctl.RotationIntent()
	if rot.Mode != input.RotateRate || rot.Value >= 0 {
		t.Errorf("RotationIntent() = %+v, expected negative rate toward heading 0", rot)
	}
}

func TestResize(t *testing.T) {
	e := newTestEngine(t, config.DefaultConfig(), Options{})
	e.Player().Pos = core.V(900, 700)

	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 400, 300
	e.Resize(rt)

	w, h := e.FieldSize()
	if w != 400 || h != 300 {
		t.Fatalf("FieldSize() = %vx%v, expected 400x300", w, h)
	}
	snap := e.Snapshot()
	if snap.Player.Pos.X >= 400 || snap.Player.Pos.Y >= 300 {
		t.Errorf("player %v not folded into the new field", snap.Player.Pos)
	}
	for _, tg := range snap.Targets {
		if tg.Pos.X >= 400 || tg.Pos.Y >= 300 {
			t.Errorf("target %s at %v not folded into the new field", tg.Tag, tg.Pos)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	ctl := &stubControls{fire: true}
	e := newTestEngine(t, noTargets(), Options{Controls: ctl})
	e.Step(1.0 / 60)

	snap := e.Snapshot()
	before := snap.Hash()
	for i := 0; i < 10; i++ {
		e.Step(1.0 / 60)
	}
	if snap.Hash() != before {
		t.Error("stepping the engine mutated an earlier snapshot")
	}
	if snap.Count(entity.KindProjectile) != 1 || snap.Count(entity.KindPlayer) != 1 {
		t.Errorf("Count: projectiles=%d player=%d", snap.Count(entity.KindProjectile), snap.Count(entity.KindPlayer))
	}
}

func TestResetRestoresSession(t *testing.T) {
	ctl := &stubControls{thrust: true, fire: true}
	e := newTestEngine(t, config.DefaultConfig(), Options{Controls: ctl})
	initial := e.Snapshot()

	for i := 0; i < 30; i++ {
		e.Step(1.0 / 60)
	}
	e.Reset()

	after := e.Snapshot()
	if initial.Hash() != after.Hash() {
		t.Error("Reset should reproduce the initial session for the same seed")
	}
}

func TestSchedulerLoop(t *testing.T) {
	var q FrameQueue
	e := newTestEngine(t, noTargets(), Options{Scheduler: &q})

	e.Start()
	if q.Len() != 1 {
		t.Fatalf("Start queued %d frames, expected 1", q.Len())
	}

	q.Fire(0)
	q.Fire(16 * time.Millisecond)
	q.Fire(32 * time.Millisecond)

	// The first frame has no previous time and steps by zero
	if math.Abs(e.Clock()-0.032) > 1e-9 {
		t.Errorf("clock = %v, expected 0.032", e.Clock())
	}
	if q.Len() != 1 {
		t.Errorf("running loop should keep exactly one frame queued, got %d", q.Len())
	}

	// A long stall is clamped
	q.Fire(10 * time.Second)
	if math.Abs(e.Clock()-(0.032+1.0/15)) > 1e-9 {
		t.Errorf("clock after stall = %v, expected %v", e.Clock(), 0.032+1.0/15)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	var q FrameQueue
	e := newTestEngine(t, noTargets(), Options{Scheduler: &q})

	e.Start()
	e.Start()

	if q.Len() != 1 {
		t.Errorf("double Start queued %d frames, expected 1", q.Len())
	}
	if !e.Running() {
		t.Error("engine should be running")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	var q FrameQueue
	e := newTestEngine(t, noTargets(), Options{Scheduler: &q})

	e.Start()
	q.Fire(0)
	e.Stop()
	e.Stop()

	if e.Running() || e.State() != Stopped {
		t.Fatal("engine should be stopped")
	}

	frame := e.Snapshot().Frame
	q.Fire(16 * time.Millisecond)
	if e.Snapshot().Frame != frame {
		t.Error("a frame after Stop did work")
	}
	if q.Len() != 0 {
		t.Errorf("stopped loop rescheduled itself (%d queued)", q.Len())
	}
}

func TestRestartHasNoDuplicateLoops(t *testing.T) {
	var q FrameQueue
	e := newTestEngine(t, noTargets(), Options{Scheduler: &q})

	e.Start()
	e.Stop()
	e.Start() // Stale callback from the first Start is still queued

	if q.Len() != 2 {
		t.Fatalf("expected stale and fresh callbacks queued, got %d", q.Len())
	}

	for i := 0; i < 5; i++ {
		before := e.Snapshot().Frame
		q.Fire(time.Duration(i) * 16 * time.Millisecond)
		if got := e.Snapshot().Frame - before; got != 1 {
			t.Fatalf("fire %d advanced %d frames, expected 1", i, got)
		}
		if q.Len() != 1 {
			t.Fatalf("fire %d left %d callbacks queued, expected 1", i, q.Len())
		}
	}
}

func TestStopInsideFrame(t *testing.T) {
	var q FrameQueue
	frames := 0
	e := newTestEngine(t, noTargets(), Options{
		Scheduler: &q,
		OnFrame: func(e *Engine) {
			frames++
			if frames == 3 {
				e.Stop()
			}
		},
	})

	e.Start()
	for i := 0; i < 10; i++ {
		q.Fire(time.Duration(i) * time.Millisecond)
	}

	if frames != 3 {
		t.Errorf("OnFrame ran %d times, expected 3", frames)
	}
	if q.Len() != 0 {
		t.Errorf("%d frames queued after stopping inside a frame", q.Len())
	}
}
