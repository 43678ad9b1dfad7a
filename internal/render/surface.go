// Package render turns a simulation snapshot into draw calls against a host
// Surface. It owns no pixels: the terminal and window hosts each implement
// Surface on top of their own drawing primitives.
package render

import (
	"image/color"

	"github.com/vovakirdan/starlinks/internal/core"
)

// Align is horizontal text alignment relative to the anchor point.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is an immediate-mode 2D drawing context. Coordinates are in field
// units and pass through the current transform set by Translate and Rotate.
type Surface interface {
	// Size returns the drawable area in field units.
	Size() (w, h float64)

	FillCircle(center core.Vec2, r float64, c color.RGBA)
	StrokeCircle(center core.Vec2, r, width float64, c color.RGBA)
	StrokePolyline(points []core.Vec2, closed bool, width float64, c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	Text(s string, at core.Vec2, align Align, c color.RGBA)

	// DrawImage blits tex scaled to w x h, centred on center.
	DrawImage(tex Texture, center core.Vec2, w, h float64)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(rad float64)
}

// Texture is a host-loaded image. Drawing code only asks whether it is
// usable and how big it is.
type Texture interface {
	Ready() bool
	Size() (w, h int)
}

// Textures maps a target tag to its icon.
type Textures map[string]Texture

// Lookup returns the texture for tag if it is ready to draw.
func (t Textures) Lookup(tag string) (Texture, bool) {
	tex, ok := t[tag]
	if !ok || tex == nil || !tex.Ready() {
		return nil, false
	}
	w, h := tex.Size()
	if w <= 0 || h <= 0 {
		return nil, false
	}
	return tex, true
}

// Palette. Colours are alpha-premultiplied, as color.RGBA requires.
var (
	Black      = color.RGBA{0, 0, 0, 255}
	White      = color.RGBA{255, 255, 255, 255}
	Flame      = color.RGBA{0xff, 0x44, 0x44, 255}
	ControlDim = color.RGBA{51, 51, 51, 51}     // White at 0.2
	ControlLit = color.RGBA{102, 102, 102, 102} // White at 0.4
)

// WithAlpha fades c by a in [0, 1], scaling every channel so the result
// stays premultiplied.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	f := core.ClampF(a, 0, 1)
	scale := func(v uint8) uint8 { return uint8(f * float64(v)) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
