package input

import (
	"math"

	"github.com/vovakirdan/starlinks/internal/core"
)

// padDir is the single direction a D-pad asserts.
type padDir uint8

const (
	padNone padDir = iota
	padUp
	padDown
	padLeft
	padRight
)

// classify maps an offset from the pad centre onto one direction:
// vertical when |dy| > |dx|, horizontal otherwise, none inside the dead-zone.
func classify(offset core.Vec2, deadZone float64) padDir {
	if offset.Length() <= deadZone {
		return padNone
	}
	if math.Abs(offset.Y) > math.Abs(offset.X) {
		if offset.Y < 0 {
			return padUp
		}
		return padDown
	}
	if offset.X < 0 {
		return padLeft
	}
	return padRight
}

// dpad is a directional pad on the left plus a fire button on the right.
// The pad follows the pointer that went down on it until that pointer lifts.
type dpad struct {
	opts   Options
	center core.Vec2
	radius float64
	active bool
	owner  int // Pointer id driving the pad while active
	touch  core.Vec2
	dir    padDir
	fire   button
}

func newDPad(opts Options) Scheme {
	return &dpad{
		opts:   opts,
		radius: opts.ButtonSize * 1.5,
		fire:   button{label: "●", size: opts.ButtonSize},
	}
}

func (d *dpad) ID() string    { return "dpad" }
func (d *dpad) Title() string { return "Directional pad" }

func (d *dpad) Layout(w, h float64) {
	m := d.opts.Margin
	d.center = core.V(m+d.radius, h-m-d.radius)
	d.fire.center = core.V(slotX(w, m, d.opts.ButtonSize, 0.5, true), rowY(h, m, d.opts.ButtonSize))
}

func (d *dpad) Handle(ev Event, active []Pointer) {
	d.fire.recompute(active)

	switch ev.Type {
	case EventPointerDown:
		if !d.active && ev.Pos.DistanceTo(d.center) <= d.radius {
			d.active = true
			d.owner = ev.Pointer
		}
	case EventPointerUp:
		if d.active && ev.Pointer == d.owner {
			d.active = false
		}
	}

	d.dir = padNone
	if !d.active {
		return
	}
	for _, p := range active {
		if p.ID == d.owner {
			d.touch = p.Pos
			d.dir = classify(p.Pos.Sub(d.center), d.opts.DeadZone)
			return
		}
	}
	// Owner vanished without an up event.
	d.active = false
}

func (d *dpad) Intent(float64) Intent {
	in := Intent{Fire: d.fire.pressed}
	switch d.dir {
	case padUp:
		in.Thrust = true
	case padLeft:
		in.Rotation = Rate(-d.opts.RotateSpeed)
	case padRight:
		in.Rotation = Rate(d.opts.RotateSpeed)
	case padNone, padDown:
	}
	return in
}

func (d *dpad) Widgets() []Widget {
	return []Widget{
		{
			Kind:    WidgetPad,
			Center:  d.center,
			Radius:  d.radius,
			Pressed: d.active,
			Knob:    d.touch,
		},
		d.fire.widget(),
	}
}

func (d *dpad) Reset() {
	d.active = false
	d.dir = padNone
	d.fire.pressed = false
}

func init() {
	Register("dpad", newDPad)
}
