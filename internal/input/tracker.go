package input

import (
	"sort"

	"github.com/vovakirdan/starlinks/internal/core"
)

// Poll is the raw state a polling host samples once per frame.
type Poll struct {
	Keys     map[Key]bool
	Pointers map[int]core.Vec2 // Contacts currently down, by id
	Focused  bool
	Width    float64
	Height   float64
}

// Tracker converts successive polls into the events Controls expects.
// The zero value is ready to use.
type Tracker struct {
	keys     map[Key]bool
	pointers map[int]core.Vec2
	focused  bool
	width    float64
	height   float64
	started  bool
}

// Diff returns the events that turn the previous poll into p, in order:
// resize, focus loss, key changes, pointer changes. Keys and pointers are
// reported in sorted order. Nothing else is reported while unfocused.
func (t *Tracker) Diff(p Poll) []Event {
	var events []Event

	if !t.started || p.Width != t.width || p.Height != t.height {
		if p.Width > 0 && p.Height > 0 {
			events = append(events, Resize(p.Width, p.Height))
		}
		t.width, t.height = p.Width, p.Height
	}

	if !t.started {
		t.started = true
		t.focused = p.Focused
	}

	if !p.Focused {
		if t.focused {
			events = append(events, Blur())
		}
		t.focused = false
		t.forget()
		return events
	}
	t.focused = true

	events = append(events, t.diffKeys(p.Keys)...)
	events = append(events, t.diffPointers(p.Pointers)...)
	return events
}

func (t *Tracker) forget() {
	clear(t.keys)
	clear(t.pointers)
}

func (t *Tracker) diffKeys(now map[Key]bool) []Event {
	if t.keys == nil {
		t.keys = make(map[Key]bool)
	}

	var events []Event
	for _, k := range sortedKeys(now) {
		if now[k] && !t.keys[k] {
			events = append(events, KeyDown(k))
			t.keys[k] = true
		}
	}
	for _, k := range sortedKeys(t.keys) {
		if !now[k] {
			events = append(events, KeyUp(k))
			delete(t.keys, k)
		}
	}
	return events
}

func (t *Tracker) diffPointers(now map[int]core.Vec2) []Event {
	if t.pointers == nil {
		t.pointers = make(map[int]core.Vec2)
	}

	var events []Event
	for _, id := range sortedIDs(now) {
		pos := now[id]
		prev, ok := t.pointers[id]
		switch {
		case !ok:
			events = append(events, PointerDown(id, pos.X, pos.Y))
		case prev != pos:
			events = append(events, PointerMove(id, pos.X, pos.Y))
		}
		t.pointers[id] = pos
	}
	for _, id := range sortedIDs(t.pointers) {
		if _, ok := now[id]; !ok {
			pos := t.pointers[id]
			events = append(events, PointerUp(id, pos.X, pos.Y))
			delete(t.pointers, id)
		}
	}
	return events
}

func sortedKeys(m map[Key]bool) []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedIDs(m map[int]core.Vec2) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
