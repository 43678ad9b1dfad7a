package input

import "github.com/vovakirdan/starlinks/internal/core"

// joystick is a virtual stick in the bottom-left corner and a fire button
// in the bottom-right. The handle is clamped to StickRadius; past the
// dead-zone the ship steers toward the handle angle and thrusts.
type joystick struct {
	opts   Options
	center core.Vec2
	active bool
	owner  int
	handle core.Vec2 // Offset from center, length <= StickRadius
	fire   button
}

func newJoystick(opts Options) Scheme {
	return &joystick{
		opts: opts,
		fire: button{label: "●", size: opts.ButtonSize},
	}
}

func (j *joystick) ID() string    { return "joystick" }
func (j *joystick) Title() string { return "Virtual joystick" }

func (j *joystick) Layout(w, h float64) {
	s, m, r := j.opts.ButtonSize, j.opts.Margin, j.opts.StickRadius
	j.center = core.V(m+r, h-m-r)
	j.fire.center = core.V(slotX(w, m, s, 0.5, true), rowY(h, m, s))
}

func (j *joystick) Handle(ev Event, active []Pointer) {
	j.fire.recompute(active)

	switch ev.Type {
	case EventPointerDown:
		// Grab radius is generous so a thumb landing near the stick still catches it.
		if !j.active && ev.Pos.DistanceTo(j.center) <= 2*j.opts.StickRadius {
			j.active = true
			j.owner = ev.Pointer
			j.move(ev.Pos)
		}
	case EventPointerMove:
		if j.active && ev.Pointer == j.owner {
			j.move(ev.Pos)
		}
	case EventPointerUp:
		if j.active && ev.Pointer == j.owner {
			j.active = false
			j.handle = core.Vec2{}
		}
	}
}

func (j *joystick) move(p core.Vec2) {
	j.handle = p.Sub(j.center).ClampLength(j.opts.StickRadius)
}

// engaged reports whether the handle is past the dead-zone.
func (j *joystick) engaged() bool {
	return j.active && j.handle.Length() > j.opts.StickDeadZone*j.opts.StickRadius
}

// Intent turns at a rate proportional to the heading error so the ship
// eases onto the stick angle instead of snapping to it.
func (j *joystick) Intent(heading float64) Intent {
	in := Intent{Fire: j.fire.pressed}
	if !j.engaged() {
		return in
	}
	errAngle := core.AngleDiff(j.handle.Angle(), heading)
	in.Rotation = Rate(errAngle * j.opts.SteerGain)
	in.Thrust = true
	return in
}

func (j *joystick) Widgets() []Widget {
	return []Widget{
		{
			Kind:    WidgetStick,
			Center:  j.center,
			Radius:  j.opts.StickRadius,
			Pressed: j.engaged(),
			Knob:    j.center.Add(j.handle),
		},
		j.fire.widget(),
	}
}

func (j *joystick) Reset() {
	j.active = false
	j.handle = core.Vec2{}
	j.fire.pressed = false
}

func init() {
	Register("joystick", newJoystick)
}
