package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/starlinks/internal/input"
)

func TestKeyLatchPressAndExpire(t *testing.T) {
	l := NewKeyLatch(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	if !l.Press(input.KeyArrowUp, t0) {
		t.Fatal("first press should report a new key")
	}
	if l.Press(input.KeyArrowUp, t0.Add(50*time.Millisecond)) {
		t.Error("repeat press should not report a new key")
	}

	// Repeat at 50ms moved the deadline to 150ms
	if got := l.Expire(t0.Add(149 * time.Millisecond)); len(got) != 0 {
		t.Errorf("released %v before the repeat window passed", got)
	}
	got := l.Expire(t0.Add(150 * time.Millisecond))
	if len(got) != 1 || got[0] != input.KeyArrowUp {
		t.Errorf("Expire() = %v, expected [ArrowUp]", got)
	}
	if l.Held(input.KeyArrowUp) {
		t.Error("key still held after release")
	}
}

func TestKeyLatchFirstHold(t *testing.T) {
	l := NewKeyLatch(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	l.Press(input.KeySpace, t0)

	// Bridges the auto-repeat delay
	if got := l.Expire(t0.Add(400 * time.Millisecond)); len(got) != 0 {
		t.Errorf("released %v inside the first hold window", got)
	}
	if got := l.Expire(t0.Add(500 * time.Millisecond)); len(got) != 1 {
		t.Errorf("Expire() = %v, expected the key released", got)
	}
}

func TestKeyLatchSortedRelease(t *testing.T) {
	l := NewKeyLatch(10*time.Millisecond, 10*time.Millisecond)
	t0 := time.Unix(1000, 0)

	l.Press(input.KeyW, t0)
	l.Press(input.KeyArrowLeft, t0)
	l.Press(input.KeySpace, t0)

	got := l.Expire(t0.Add(time.Second))
	expected := []input.Key{input.KeySpace, input.KeyArrowLeft, input.KeyW}
	if len(got) != len(expected) {
		t.Fatalf("Expire() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expire()[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestKeyLatchClear(t *testing.T) {
	l := NewKeyLatch(time.Second, time.Second)
	l.Press(input.KeyD, time.Unix(0, 0))
	l.Clear()

	if l.Held(input.KeyD) {
		t.Error("Clear() left a key held")
	}
	if !l.Press(input.KeyD, time.Unix(1, 0)) {
		t.Error("press after Clear() should report a new key")
	}
}
