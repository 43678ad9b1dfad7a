// Package input folds raw host events into the three per-frame intents the
// simulation polls: rotation, thrust and fire.
//
// Hosts push events synchronously with Controls.Push as they arrive. The
// simulation never subscribes to events; it reads the derived intent once
// per frame, so the last write before a frame wins.
package input

import (
	"strings"

	"github.com/vovakirdan/starlinks/internal/core"
)

// Key is a physical key identifier in browser-style naming.
type Key string

// Keys the fixed keyboard mapping understands.
const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeySpace      Key = " "
	KeyA          Key = "a"
	KeyD          Key = "d"
	KeyW          Key = "w"
	KeyS          Key = "s"
)

// NormalizeKey maps host key names ("left", "space", "A", ...) onto Key.
// Unknown names pass through lowercased.
func NormalizeKey(name string) Key {
	switch strings.ToLower(name) {
	case "left", "arrowleft":
		return KeyArrowLeft
	case "right", "arrowright":
		return KeyArrowRight
	case "up", "arrowup":
		return KeyArrowUp
	case "down", "arrowdown":
		return KeyArrowDown
	case " ", "space", "spacebar":
		return KeySpace
	}
	return Key(strings.ToLower(name))
}

// EventType identifies a raw input event.
type EventType uint8

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventBlur
	EventHidden
	EventResize
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	case EventPointerDown:
		return "pointer_down"
	case EventPointerMove:
		return "pointer_move"
	case EventPointerUp:
		return "pointer_up"
	case EventBlur:
		return "blur"
	case EventHidden:
		return "hidden"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is one raw input notification from the host.
// Pointer events use Pointer and Pos; Resize uses Width and Height.
type Event struct {
	Type    EventType
	Key     Key
	Pointer int
	Pos     core.Vec2
	Width   float64
	Height  float64
}

// KeyDown returns a key-press event.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// KeyUp returns a key-release event.
func KeyUp(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// PointerDown returns a touch-start event for pointer id at (x, y).
func PointerDown(id int, x, y float64) Event {
	return Event{Type: EventPointerDown, Pointer: id, Pos: core.V(x, y)}
}

// PointerMove returns a touch-move event for pointer id at (x, y).
func PointerMove(id int, x, y float64) Event {
	return Event{Type: EventPointerMove, Pointer: id, Pos: core.V(x, y)}
}

// PointerUp returns a touch-end event for pointer id at (x, y).
func PointerUp(id int, x, y float64) Event {
	return Event{Type: EventPointerUp, Pointer: id, Pos: core.V(x, y)}
}

// Blur returns a focus-lost event.
func Blur() Event { return Event{Type: EventBlur} }

// Hidden returns a visibility-lost event.
func Hidden() Event { return Event{Type: EventHidden} }

// Resize returns a viewport size change event.
func Resize(w, h float64) Event { return Event{Type: EventResize, Width: w, Height: h} }

// Pointer is an active touch or mouse contact.
type Pointer struct {
	ID    int
	Start core.Vec2 // Position at pointer-down
	Pos   core.Vec2 // Latest position
}
