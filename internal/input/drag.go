package input

import "github.com/vovakirdan/starlinks/internal/core"

// drag steers by dragging anywhere on the field: the ship points along the
// vector from where the touch started to where it is now, and thrusts while
// the drag is held. Touches that start on the fire button only fire.
type drag struct {
	opts   Options
	active bool
	owner  int
	start  core.Vec2
	pos    core.Vec2
	fire   button
}

func newDrag(opts Options) Scheme {
	return &drag{
		opts: opts,
		fire: button{label: "●", size: opts.ButtonSize},
	}
}

func (d *drag) ID() string    { return "drag" }
func (d *drag) Title() string { return "Drag to steer" }

func (d *drag) Layout(w, h float64) {
	s, m := d.opts.ButtonSize, d.opts.Margin
	d.fire.center = core.V(slotX(w, m, s, 0.5, true), rowY(h, m, s))
}

func (d *drag) Handle(ev Event, active []Pointer) {
	d.fire.recompute(active)

	switch ev.Type {
	case EventPointerDown:
		if !d.active && !d.fire.hit(ev.Pos) {
			d.active = true
			d.owner = ev.Pointer
			d.start = ev.Pos
			d.pos = ev.Pos
		}
	case EventPointerMove:
		if d.active && ev.Pointer == d.owner {
			d.pos = ev.Pos
		}
	case EventPointerUp:
		if d.active && ev.Pointer == d.owner {
			d.active = false
		}
	}
}

func (d *drag) Intent(float64) Intent {
	in := Intent{Fire: d.fire.pressed}
	if !d.active {
		return in
	}
	v := d.pos.Sub(d.start)
	if v.Length() <= d.opts.DeadZone {
		return in
	}
	in.Rotation = Heading(v.Angle())
	in.Thrust = true
	return in
}

func (d *drag) Widgets() []Widget {
	out := []Widget{d.fire.widget()}
	if d.active {
		out = append(out, Widget{
			Kind:    WidgetStick,
			Center:  d.start,
			Radius:  d.opts.DeadZone,
			Pressed: true,
			Knob:    d.pos,
		})
	}
	return out
}

func (d *drag) Reset() {
	d.active = false
	d.fire.pressed = false
}

func init() {
	Register("drag", newDrag)
}
