package input

import "sort"

// HeadingSource supplies the ship's current heading for schemes that steer
// relative to it. *entity.Player satisfies it.
type HeadingSource interface {
	Heading() float64
}

// Controls merges the fixed keyboard mapping with one virtual scheme.
// It is not safe for concurrent use; hosts push events from their loop.
type Controls struct {
	opts     Options
	scheme   Scheme
	keys     map[Key]bool
	pointers map[int]Pointer
	heading  HeadingSource
	width    float64
	height   float64
}

// NewControls creates controls for a w x h viewport using opts.Scheme.
func NewControls(opts Options, w, h float64) (*Controls, error) {
	scheme, err := Create(opts.Scheme, opts)
	if err != nil {
		return nil, err
	}

	c := &Controls{
		opts:     opts,
		scheme:   scheme,
		keys:     make(map[Key]bool),
		pointers: make(map[int]Pointer),
	}
	c.resize(w, h)
	return c, nil
}

// Attach sets the heading feedback source. The player is referenced, not owned.
func (c *Controls) Attach(h HeadingSource) {
	c.heading = h
}

// Scheme returns the active virtual scheme.
func (c *Controls) Scheme() Scheme {
	return c.scheme
}

// Push applies one raw event to the input state.
func (c *Controls) Push(ev Event) {
	switch ev.Type {
	case EventKeyDown:
		c.keys[ev.Key] = true
	case EventKeyUp:
		delete(c.keys, ev.Key)
	case EventPointerDown:
		c.pointers[ev.Pointer] = Pointer{ID: ev.Pointer, Start: ev.Pos, Pos: ev.Pos}
		c.scheme.Handle(ev, c.active())
	case EventPointerMove:
		p, ok := c.pointers[ev.Pointer]
		if !ok {
			// Hover without contact
			return
		}
		p.Pos = ev.Pos
		c.pointers[ev.Pointer] = p
		c.scheme.Handle(ev, c.active())
	case EventPointerUp:
		delete(c.pointers, ev.Pointer)
		c.scheme.Handle(ev, c.active())
	case EventBlur, EventHidden:
		c.Reset()
	case EventResize:
		c.resize(ev.Width, ev.Height)
	}
}

// Reset releases every key, pointer and virtual control.
func (c *Controls) Reset() {
	clear(c.keys)
	clear(c.pointers)
	c.scheme.Reset()
}

// Pressed reports whether key k is currently held.
func (c *Controls) Pressed(k Key) bool {
	return c.keys[k]
}

// RotationIntent returns this frame's rotation request. Keys and virtual
// controls combine per direction, and left wins when both directions are
// asked for. A virtual heading applies only when no key rotates.
func (c *Controls) RotationIntent() Rotation {
	virtual := c.scheme.Intent(c.currentHeading()).Rotation
	switch {
	case c.keys[KeyArrowLeft] || c.keys[KeyA]:
		return Rate(-c.opts.RotateSpeed)
	case virtual.Mode == RotateRate && virtual.Value < 0:
		return virtual
	case c.keys[KeyArrowRight] || c.keys[KeyD]:
		return Rate(c.opts.RotateSpeed)
	}
	return virtual
}

// ThrustIntent reports whether the ship should accelerate this frame.
func (c *Controls) ThrustIntent() bool {
	if c.keys[KeyArrowUp] || c.keys[KeyW] {
		return true
	}
	return c.scheme.Intent(c.currentHeading()).Thrust
}

// FireIntent reports whether the ship wants to shoot this frame.
func (c *Controls) FireIntent() bool {
	if c.keys[KeySpace] {
		return true
	}
	return c.scheme.Intent(c.currentHeading()).Fire
}

// Widgets returns the virtual controls for the render overlay.
func (c *Controls) Widgets() []Widget {
	return c.scheme.Widgets()
}

// Size returns the viewport the controls are laid out for.
func (c *Controls) Size() (w, h float64) {
	return c.width, c.height
}

func (c *Controls) resize(w, h float64) {
	c.width, c.height = w, h
	c.scheme.Layout(w, h)
}

func (c *Controls) currentHeading() float64 {
	if c.heading == nil {
		return 0
	}
	return c.heading.Heading()
}

// active returns the live pointers sorted by id so schemes see a stable order.
func (c *Controls) active() []Pointer {
	out := make([]Pointer, 0, len(c.pointers))
	for _, p := range c.pointers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
