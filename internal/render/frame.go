package render

import (
	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/entity"
	"github.com/vovakirdan/starlinks/internal/input"
	"github.com/vovakirdan/starlinks/internal/sim"
)

// Overlay is drawn over the field: virtual controls and instruction text.
type Overlay struct {
	Widgets []input.Widget
	Lines   []string
}

const (
	lineWidth      = 2
	iconScale      = 0.7 // Icon diameter relative to the target diameter
	textLeft       = 10
	textTop        = 30
	textLineStep   = 30
	knobFraction   = 0.4
	padDotFraction = 0.25
)

// Ship outline in ship-local coordinates, nose along +X.
var (
	shipHull  = []core.Vec2{{X: -10, Y: -10}, {X: 20, Y: 0}, {X: -10, Y: 10}, {X: -5, Y: 0}}
	shipFlame = []core.Vec2{{X: -5, Y: 0}, {X: -15, Y: 0}}
)

// Glyph returns the fallback text drawn in a target with no usable icon.
func Glyph(tag string) string {
	switch tag {
	case "twitter":
		return "X"
	case "blog":
		return "✎"
	case "github":
		return "gh"
	case "linkedin":
		return "in"
	case "replit":
		return "⌨"
	default:
		return "?"
	}
}

// Frame draws one complete frame of snap onto s.
func Frame(s Surface, snap *sim.Snapshot, tex Textures, ov Overlay) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h, Black)

	Entity(s, snap.Player, tex)
	for _, st := range snap.Projectiles {
		Entity(s, st, tex)
	}
	for _, st := range snap.Targets {
		Entity(s, st, tex)
	}
	for _, st := range snap.Particles {
		Entity(s, st, tex)
	}

	for _, wd := range ov.Widgets {
		drawWidget(s, wd)
	}
	for i, line := range ov.Lines {
		s.Text(line, core.V(textLeft, textTop+float64(i)*textLineStep), AlignLeft, White)
	}
}

// Entity draws a single entity state.
func Entity(s Surface, st entity.State, tex Textures) {
	switch st.Kind {
	case entity.KindPlayer:
		drawShip(s, st)
	case entity.KindProjectile:
		s.FillCircle(st.Pos, st.Radius, White)
	case entity.KindTarget:
		drawTarget(s, st, tex)
	case entity.KindParticle:
		s.FillCircle(st.Pos, st.Size, WithAlpha(White, st.Life))
	}
}

func drawShip(s Surface, st entity.State) {
	s.Save()
	defer s.Restore()

	s.Translate(st.Pos.X, st.Pos.Y)
	s.Rotate(st.Rotation)
	s.StrokePolyline(shipHull, true, lineWidth, White)
	if st.Thrusting {
		s.StrokePolyline(shipFlame, false, lineWidth, Flame)
	}
}

func drawTarget(s Surface, st entity.State, tex Textures) {
	s.Save()
	defer s.Restore()

	s.Translate(st.Pos.X, st.Pos.Y)
	s.Rotate(st.Rotation)
	s.StrokeCircle(core.Vec2{}, st.Radius, lineWidth, White)

	if t, ok := tex.Lookup(st.Tag); ok {
		d := st.Radius * 2 * iconScale
		s.DrawImage(t, core.Vec2{}, d, d)
		return
	}
	s.Text(Glyph(st.Tag), core.Vec2{}, AlignCenter, White)
}

func drawWidget(s Surface, wd input.Widget) {
	switch wd.Kind {
	case input.WidgetButton:
		fill := ControlDim
		if wd.Pressed {
			fill = ControlLit
		}
		s.FillCircle(wd.Center, wd.Radius, fill)
		s.StrokeCircle(wd.Center, wd.Radius, lineWidth, ControlLit)
		s.Text(wd.Label, wd.Center, AlignCenter, White)
	case input.WidgetPad:
		s.StrokeCircle(wd.Center, wd.Radius, lineWidth, ControlLit)
		if wd.Pressed {
			s.FillCircle(wd.Knob, wd.Radius*padDotFraction, ControlLit)
		}
	case input.WidgetStick:
		s.StrokeCircle(wd.Center, wd.Radius, lineWidth, ControlLit)
		fill := ControlDim
		if wd.Pressed {
			fill = ControlLit
		}
		knob := wd.Knob
		if knob.IsZero() {
			knob = wd.Center
		}
		s.FillCircle(knob, wd.Radius*knobFraction, fill)
	}
}

// Instructions returns the help text for a control scheme.
func Instructions(scheme string) []string {
	lines := []string{"Keys: Arrows/WASD to move, SPACE to shoot"}
	switch scheme {
	case "buttons":
		lines = append(lines, "Touch: ← → to turn, ▲ to thrust, ● to shoot")
	case "dpad":
		lines = append(lines, "Touch: pad to turn and thrust, ● to shoot")
	case "drag":
		lines = append(lines, "Touch: drag to steer, tap ● to shoot")
	case "joystick":
		lines = append(lines, "Touch: stick to steer, ● to shoot")
	}
	return lines
}
