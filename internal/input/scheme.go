package input

import "github.com/vovakirdan/starlinks/internal/core"

// RotationMode tells the simulation how to apply a Rotation.
type RotationMode uint8

const (
	// RotateNone leaves the heading alone.
	RotateNone RotationMode = iota
	// RotateRate turns by Value radians per second.
	RotateRate
	// RotateHeading sets the heading to Value radians.
	RotateHeading
)

// Rotation is the rotation intent for one frame.
type Rotation struct {
	Mode  RotationMode
	Value float64
}

// Rate returns a delta-style rotation intent.
func Rate(radPerSec float64) Rotation { return Rotation{Mode: RotateRate, Value: radPerSec} }

// Heading returns an absolute heading intent.
func Heading(rad float64) Rotation { return Rotation{Mode: RotateHeading, Value: rad} }

// Intent is what a control scheme asks of the ship this frame.
type Intent struct {
	Rotation Rotation
	Thrust   bool
	Fire     bool
}

// Scheme is a virtual on-screen control layout driven by pointer events.
// Schemes hold no keyboard state; Controls merges keys on top of them.
type Scheme interface {
	// ID returns the registry name, e.g. "joystick".
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Layout places the controls for a w x h viewport.
	Layout(w, h float64)

	// Handle is called after Controls applied a pointer event to the
	// active set. active is sorted by pointer id.
	Handle(ev Event, active []Pointer)

	// Intent derives the scheme's contribution for the given ship heading.
	Intent(heading float64) Intent

	// Widgets describes the controls for the render overlay.
	Widgets() []Widget

	// Reset releases every virtual control.
	Reset()
}

// WidgetKind identifies how a widget is drawn.
type WidgetKind uint8

const (
	WidgetButton WidgetKind = iota
	WidgetPad
	WidgetStick
)

// Widget is the render-side view of one virtual control.
type Widget struct {
	Kind    WidgetKind
	Label   string
	Center  core.Vec2
	Radius  float64
	Pressed bool
	Knob    core.Vec2 // Stick handle or pad touch position, valid when Pressed
}

// button is a circular hit-region.
type button struct {
	label   string
	center  core.Vec2
	size    float64 // Diameter
	pressed bool
}

// hit reports whether p lies strictly inside the region.
func (b *button) hit(p core.Vec2) bool {
	return p.DistanceTo(b.center) < b.size/2
}

// recompute sets pressed if any active pointer is on the button.
func (b *button) recompute(active []Pointer) {
	b.pressed = false
	for _, p := range active {
		if b.hit(p.Pos) {
			b.pressed = true
			return
		}
	}
}

func (b *button) widget() Widget {
	return Widget{
		Kind:    WidgetButton,
		Label:   b.label,
		Center:  b.center,
		Radius:  b.size / 2,
		Pressed: b.pressed,
	}
}

// slotX returns the x of a slot centred slots button sizes in from the
// left edge, or from the right edge when fromRight is set.
func slotX(w, margin, size, slots float64, fromRight bool) float64 {
	if fromRight {
		return w - margin - slots*size
	}
	return margin + slots*size
}

func rowY(h, margin, size float64) float64 {
	return h - margin - size/2
}

// keyboardOnly is the scheme with no on-screen controls.
type keyboardOnly struct{}

func (keyboardOnly) ID() string { return "keyboard" }
func (keyboardOnly) Title() string { return "Keyboard only" }
func (keyboardOnly) Layout(w, h float64) {}
func (keyboardOnly) Handle(Event, []Pointer) {}
func (keyboardOnly) Intent(float64) Intent { return Intent{} }
func (keyboardOnly) Widgets() []Widget { return nil }
func (keyboardOnly) Reset() {}

func init() {
	Register("keyboard", func(Options) Scheme { return keyboardOnly{} })
}
