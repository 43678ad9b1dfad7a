package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/starlinks/internal/input"
)

// Default hold windows. The first press waits out the terminal's
// auto-repeat delay; later repeats arrive much faster.
const (
	DefaultFirstHold  = 500 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

// KeyLatch turns the press-only key stream of a terminal into held state.
// A key counts as held until no press for it arrives within its window.
type KeyLatch struct {
	first  time.Duration
	repeat time.Duration
	until  map[input.Key]time.Time
}

// NewKeyLatch creates a latch with the given hold windows.
func NewKeyLatch(first, repeat time.Duration) *KeyLatch {
	return &KeyLatch{
		first:  first,
		repeat: repeat,
		until:  make(map[input.Key]time.Time),
	}
}

// Press records a press of k at now. It reports whether k was not held
// before, i.e. whether a key-down should be emitted.
func (l *KeyLatch) Press(k input.Key, now time.Time) bool {
	_, held := l.until[k]
	if held {
		l.until[k] = now.Add(l.repeat)
		return false
	}
	l.until[k] = now.Add(l.first)
	return true
}

// Expire releases every key whose window has passed and returns them in
// sorted order.
func (l *KeyLatch) Expire(now time.Time) []input.Key {
	var released []input.Key
	for k, deadline := range l.until {
		if !now.Before(deadline) {
			released = append(released, k)
			delete(l.until, k)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Held reports whether k is currently latched.
func (l *KeyLatch) Held(k input.Key) bool {
	_, ok := l.until[k]
	return ok
}

// Clear releases everything without reporting.
func (l *KeyLatch) Clear() {
	clear(l.until)
}
