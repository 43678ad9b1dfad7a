package input

// buttons lays out four discrete circular buttons along the bottom edge:
// rotate left, rotate right on the left; thrust, fire on the right.
type buttons struct {
	opts                      Options
	left, right, thrust, fire button
}

func newButtons(opts Options) Scheme {
	return &buttons{
		opts:   opts,
		left:   button{label: "←", size: opts.ButtonSize},
		right:  button{label: "→", size: opts.ButtonSize},
		thrust: button{label: "▲", size: opts.ButtonSize},
		fire:   button{label: "●", size: opts.ButtonSize},
	}
}

func (b *buttons) ID() string    { return "buttons" }
func (b *buttons) Title() string { return "Touch buttons" }

func (b *buttons) Layout(w, h float64) {
	s, m := b.opts.ButtonSize, b.opts.Margin
	y := rowY(h, m, s)
	b.left.center.X, b.left.center.Y = slotX(w, m, s, 0.5, false), y
	b.right.center.X, b.right.center.Y = slotX(w, m, s, 1.75, false), y
	b.thrust.center.X, b.thrust.center.Y = slotX(w, m, s, 1.75, true), y
	b.fire.center.X, b.fire.center.Y = slotX(w, m, s, 0.5, true), y
}

// Handle resets every button and recomputes it from all active pointers,
// so lifting one finger never releases a button held by another.
func (b *buttons) Handle(_ Event, active []Pointer) {
	for _, btn := range b.all() {
		btn.recompute(active)
	}
}

func (b *buttons) Intent(float64) Intent {
	in := Intent{
		Thrust: b.thrust.pressed,
		Fire:   b.fire.pressed,
	}
	switch {
	case b.left.pressed:
		in.Rotation = Rate(-b.opts.RotateSpeed)
	case b.right.pressed:
		in.Rotation = Rate(b.opts.RotateSpeed)
	}
	return in
}

func (b *buttons) Widgets() []Widget {
	all := b.all()
	out := make([]Widget, len(all))
	for i, btn := range all {
		out[i] = btn.widget()
	}
	return out
}

func (b *buttons) Reset() {
	for _, btn := range b.all() {
		btn.pressed = false
	}
}

func (b *buttons) all() []*button {
	return []*button{&b.left, &b.right, &b.thrust, &b.fire}
}

func init() {
	Register("buttons", newButtons)
}
