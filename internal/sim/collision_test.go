package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/entity"
)

func placeTargets(e *Engine, targets ...entity.Target) {
	e.targets = append(e.targets[:0], targets...)
}

func placeProjectile(e *Engine, pos core.Vec2) {
	e.projectiles = append(e.projectiles, entity.NewProjectile(pos, 0, 0, 4, 1.5))
}

func TestCollisionOpensLink(t *testing.T) {
	rec := &linkRecorder{}
	e := newTestEngine(t, noTargets(), Options{Links: rec})
	placeTargets(e, entity.NewTarget(entity.Link{Tag: "github", URL: "https://github.com"},
		core.V(300, 300), core.Vec2{}, 0, 25, 0))
	placeProjectile(e, core.V(320, 300))

	e.Step(0)

	if len(rec.opened) != 1 || rec.opened[0] != (recordedLink{"github", "https://github.com"}) {
		t.Fatalf("opened = %+v, expected one github link", rec.opened)
	}
	snap := e.Snapshot()
	if len(snap.Projectiles) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
	if len(snap.Targets) != 1 {
		t.Error("target should persist after being hit")
	}
	if len(snap.Particles) != 20 {
		t.Errorf("got %d particles, expected a burst of 20", len(snap.Particles))
	}
	for _, p := range snap.Particles {
		if p.Tag != "white" {
			t.Errorf("particle color %q, expected white", p.Tag)
		}
	}
}

func TestCollisionTieBreak(t *testing.T) {
	rec := &linkRecorder{}
	e := newTestEngine(t, noTargets(), Options{Links: rec})
	placeTargets(e,
		entity.NewTarget(entity.Link{Tag: "first", URL: "https://a.example"}, core.V(300, 300), core.Vec2{}, 0, 25, 0),
		entity.NewTarget(entity.Link{Tag: "second", URL: "https://b.example"}, core.V(310, 300), core.Vec2{}, 0, 25, 0),
	)
	placeProjectile(e, core.V(305, 300))

	e.Step(0)

	if len(rec.opened) != 1 {
		t.Fatalf("projectile overlapping two targets opened %d links, expected 1", len(rec.opened))
	}
	if rec.opened[0].tag != "first" {
		t.Errorf("hit %q, expected the first target in order", rec.opened[0].tag)
	}
	if n := len(e.Snapshot().Projectiles); n != 0 {
		t.Errorf("%d projectiles left, expected the one projectile removed", n)
	}
	if n := len(e.Snapshot().Particles); n != 20 {
		t.Errorf("%d particles, expected exactly one burst", n)
	}
}

func TestCollisionBoundary(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		hit  bool
	}{
		{"inside", 328.9, true},
		{"touching", 329, false},
		{"outside", 340, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &linkRecorder{}
			e := newTestEngine(t, noTargets(), Options{Links: rec})
			placeTargets(e, entity.NewTarget(entity.Link{Tag: "blog", URL: "https://blog.example"},
				core.V(300, 300), core.Vec2{}, 0, 25, 0))
			placeProjectile(e, core.V(tc.x, 300))

			e.Step(0)

			if got := len(rec.opened) == 1; got != tc.hit {
				t.Errorf("hit = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestTargetsAreReusable(t *testing.T) {
	rec := &linkRecorder{}
	e := newTestEngine(t, noTargets(), Options{Links: rec})
	placeTargets(e, entity.NewTarget(entity.Link{Tag: "replit", URL: "https://replit.com"},
		core.V(300, 300), core.Vec2{}, 0, 25, 0))

	for i := 0; i < 3; i++ {
		placeProjectile(e, core.V(300, 300))
		e.Step(0)
	}

	if len(rec.opened) != 3 {
		t.Errorf("opened %d links, expected the portal to trigger 3 times", len(rec.opened))
	}
}

func TestMultipleProjectilesOneFrame(t *testing.T) {
	rec := &linkRecorder{}
	e := newTestEngine(t, noTargets(), Options{Links: rec})
	placeTargets(e, entity.NewTarget(entity.Link{Tag: "github", URL: "https://github.com"},
		core.V(300, 300), core.Vec2{}, 0, 25, 0))
	placeProjectile(e, core.V(300, 300))
	placeProjectile(e, core.V(310, 300))
	placeProjectile(e, core.V(600, 600)) // Miss

	e.Step(0)

	if len(rec.opened) != 2 {
		t.Errorf("opened %d links, expected 2", len(rec.opened))
	}
	if n := len(e.Snapshot().Projectiles); n != 1 {
		t.Errorf("%d projectiles left, expected only the miss", n)
	}
}

func TestCollisionWithoutOpener(t *testing.T) {
	e := newTestEngine(t, noTargets(), Options{})
	placeTargets(e, entity.NewTarget(entity.Link{Tag: "github", URL: "https://github.com"},
		core.V(300, 300), core.Vec2{}, 0, 25, 0))
	placeProjectile(e, core.V(300, 300))

	e.Step(0)

	if n := len(e.Snapshot().Projectiles); n != 0 {
		t.Errorf("hit without an opener should still consume the projectile, %d left", n)
	}
}

func TestParticlesExpireInEngine(t *testing.T) {
	e := newTestEngine(t, noTargets(), Options{})
	e.particles.Emit(core.V(100, 100), 10, "white")

	// 0.5s in binary-exact steps
	for i := 0; i < 7; i++ {
		e.Step(0.0625)
	}
	if e.particles.Len() != 10 {
		t.Fatalf("%d particles alive at 0.4375s, expected 10", e.particles.Len())
	}
	e.Step(0.0625)
	if e.particles.Len() != 0 {
		t.Errorf("%d particles alive at 0.5s, expected 0", e.particles.Len())
	}
}

func TestFrameQueue(t *testing.T) {
	var q FrameQueue
	calls := 0
	var requeue FrameFunc
	requeue = func(now time.Duration) {
		calls++
		q.RequestFrame(requeue)
	}

	q.RequestFrame(requeue)
	if n := q.Fire(0); n != 1 {
		t.Errorf("Fire ran %d callbacks, expected 1", n)
	}
	if calls != 1 || q.Len() != 1 {
		t.Errorf("calls=%d queued=%d, expected a requeued callback to wait for the next Fire", calls, q.Len())
	}
}
