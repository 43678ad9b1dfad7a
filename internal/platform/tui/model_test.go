package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starlinks/internal/config"
	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/input"
	"github.com/vovakirdan/starlinks/internal/platform/links"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7},
		Links:   links.New(links.Options{}),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m.now = func() time.Time { return t0 }
	m.start = t0
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelReservesFooterRow(t *testing.T) {
	m := newTestModel(t)

	w, h := m.Engine().FieldSize()
	if w != 800 || h != 480 {
		t.Errorf("FieldSize() = (%v, %v), expected (800, 480)", w, h)
	}
}

func TestModelUnknownScheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Controls.Scheme = "trackball"

	if _, err := NewModel(Options{Config: cfg, Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24}}); err == nil {
		t.Error("NewModel() accepted an unknown control scheme")
	}
}

func TestModelKeyLatch(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if !m.controls.ThrustIntent() {
		t.Fatal("up arrow press did not start thrust")
	}

	// Still inside the first hold window
	m, _ = update(t, m, TickMsg(t0.Add(400*time.Millisecond)))
	if !m.controls.ThrustIntent() {
		t.Error("thrust released inside the hold window")
	}

	m, _ = update(t, m, TickMsg(t0.Add(DefaultFirstHold)))
	if m.controls.ThrustIntent() {
		t.Error("thrust still held after the hold window")
	}
}

func TestModelFireKey(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	if !m.controls.FireIntent() {
		t.Error("space did not set fire intent")
	}
}

func TestModelBlurReleasesKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.BlurMsg{})

	if m.controls.RotationIntent().Mode != input.RotateNone {
		t.Error("rotation still active after focus loss")
	}
	if m.latch.Held(input.KeyArrowLeft) {
		t.Error("latch still holds a key after focus loss")
	}
}

func TestModelTickRunsFrames(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	var cmd tea.Cmd
	for i := 1; i <= 3; i++ {
		m, cmd = update(t, m, TickMsg(t0.Add(time.Duration(i)*16*time.Millisecond)))
		if cmd == nil {
			t.Fatal("tick did not schedule the next tick")
		}
	}
	if got := m.Engine().Snapshot().Frame; got != 3 {
		t.Errorf("Frame = %d after 3 ticks, expected 3", got)
	}
}

func TestModelQuitStopsEngine(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if m.Engine().Running() {
		t.Error("engine still running after quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}

	// Further ticks do not reschedule
	if _, cmd = update(t, m, TickMsg(t0.Add(time.Second))); cmd != nil {
		t.Error("tick after quit scheduled another tick")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	w, h := m.Engine().FieldSize()
	if w != 1000 || h != 600 {
		t.Errorf("FieldSize() = (%v, %v), expected (1000, 600)", w, h)
	}
	if cw, ch := m.controls.Size(); cw != 1000 || ch != 600 {
		t.Errorf("controls laid out for (%v, %v), expected (1000, 600)", cw, ch)
	}
	if sw, sh := m.canvas.Screen().Width(), m.canvas.Screen().Height(); sw != 100 || sh != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", sw, sh)
	}
}

func TestModelMousePressesButton(t *testing.T) {
	m := newTestModel(t)

	// Fire button centre is (750, 430) on an 800x480 field
	m, _ = update(t, m, tea.MouseMsg{X: 75, Y: 21, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.controls.FireIntent() {
		t.Fatal("mouse press on the fire button did not fire")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 75, Y: 21, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.controls.FireIntent() {
		t.Error("fire still held after mouse release")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Errorf("view has %d lines, expected 25", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("footer %q missing help", lines[len(lines)-1])
	}

	m.links.OpenLink("github", "https://github.com/vovakirdan")
	lines = strings.Split(m.View(), "\n")
	if !strings.Contains(lines[len(lines)-1], "github.com/vovakirdan") {
		t.Errorf("footer %q missing last link", lines[len(lines)-1])
	}
}
