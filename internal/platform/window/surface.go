package window

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/render"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// Surface draws onto an ebiten image. Field units are pixels.
type Surface struct {
	render.Stack
	img *ebiten.Image
}

// begin targets img for the next frame.
func (s *Surface) begin(img *ebiten.Image) {
	s.img = img
	s.Reset()
}

// Size returns the target image size.
func (s *Surface) Size() (w, h float64) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) FillCircle(center core.Vec2, r float64, c color.RGBA) {
	p := s.Apply(center)
	vector.DrawFilledCircle(s.img, float32(p.X), float32(p.Y), float32(r), c, true)
}

func (s *Surface) StrokeCircle(center core.Vec2, r, width float64, c color.RGBA) {
	p := s.Apply(center)
	vector.StrokeCircle(s.img, float32(p.X), float32(p.Y), float32(r), float32(width), c, true)
}

func (s *Surface) StrokePolyline(points []core.Vec2, closed bool, width float64, c color.RGBA) {
	if len(points) < 2 {
		return
	}
	pts := make([]core.Vec2, len(points))
	for i, p := range points {
		pts[i] = s.Apply(p)
	}
	if closed {
		pts = append(pts, pts[0])
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
	}
}

// FillRect fills an axis-aligned rectangle. Only its origin is transformed.
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	p := s.Apply(core.V(x, y))
	vector.DrawFilledRect(s.img, float32(p.X), float32(p.Y), float32(w), float32(h), c, false)
}

// Text prints str with the debug font, vertically centred on at. The debug
// font is always white.
func (s *Surface) Text(str string, at core.Vec2, align render.Align, _ color.RGBA) {
	p := s.Apply(at)
	width := float64(utf8.RuneCountInString(str) * glyphW)
	switch align {
	case render.AlignCenter:
		p.X -= width / 2
	case render.AlignRight:
		p.X -= width
	}
	ebitenutil.DebugPrintAt(s.img, str, int(p.X), int(p.Y-glyphH/2))
}

func (s *Surface) DrawImage(tex render.Texture, center core.Vec2, w, h float64) {
	t, ok := tex.(*Texture)
	if !ok || !t.Ready() {
		return
	}
	iw, ih := t.Size()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(s.Current().Rotation())
	p := s.Apply(center)
	op.GeoM.Translate(p.X, p.Y)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(t.img, op)
}
