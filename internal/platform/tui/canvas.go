package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/render"
)

// Canvas rasterizes render draw calls into a character Screen. One cell
// covers cellW x cellH field units.
type Canvas struct {
	render.Stack
	screen       *core.Screen
	cellW, cellH float64
}

// NewCanvas creates a canvas over screen.
func NewCanvas(screen *core.Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the backing screen.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Size returns the drawable area in field units.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// cell returns the screen cell containing p after the current transform.
func (c *Canvas) cell(p core.Vec2) (x, y int) {
	p = c.Apply(p)
	return int(math.Floor(p.X / c.cellW)), int(math.Floor(p.Y / c.cellH))
}

// FillCircle shades every cell whose centre lies inside the circle. A circle
// narrower than a cell marks the cell under its centre with a dot.
func (c *Canvas) FillCircle(center core.Vec2, r float64, col color.RGBA) {
	fg, ok := cellColor(col)
	if !ok {
		return
	}
	center = c.Apply(center)

	if 2*r < math.Min(c.cellW, c.cellH) {
		dot := '•'
		if col.A < 128 {
			dot = '·'
		}
		c.screen.SetCell(int(math.Floor(center.X/c.cellW)), int(math.Floor(center.Y/c.cellH)), dot, fg)
		return
	}

	x0 := int(math.Floor((center.X - r) / c.cellW))
	x1 := int(math.Floor((center.X + r) / c.cellW))
	y0 := int(math.Floor((center.Y - r) / c.cellH))
	y1 := int(math.Floor((center.Y + r) / c.cellH))

	ch := shade(col.A)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mid := core.V((float64(x)+0.5)*c.cellW, (float64(y)+0.5)*c.cellH)
			if mid.DistanceTo(center) < r {
				c.screen.SetCell(x, y, ch, fg)
			}
		}
	}
}

// StrokeCircle marks the cells the circumference passes through.
func (c *Canvas) StrokeCircle(center core.Vec2, r, _ float64, col color.RGBA) {
	fg, ok := cellColor(col)
	if !ok || r <= 0 {
		return
	}
	center = c.Apply(center)

	// Enough samples to touch every cell on the rim
	steps := int(math.Ceil(2*math.Pi*r/math.Min(c.cellW, c.cellH))) * 2
	steps = max(steps, 8)
	for i := range steps {
		p := center.Add(core.FromAngle(2*math.Pi*float64(i)/float64(steps), r))
		c.screen.SetCell(int(math.Floor(p.X/c.cellW)), int(math.Floor(p.Y/c.cellH)), 'o', fg)
	}
}

// StrokePolyline draws line segments between consecutive points.
func (c *Canvas) StrokePolyline(points []core.Vec2, closed bool, _ float64, col color.RGBA) {
	fg, ok := cellColor(col)
	if !ok || len(points) == 0 {
		return
	}
	ch := '#'
	if fg == core.ColorFlame {
		ch = '*'
	}

	px, py := c.cell(points[0])
	if len(points) == 1 {
		c.screen.SetCell(px, py, ch, fg)
		return
	}
	for _, p := range points[1:] {
		x, y := c.cell(p)
		c.screen.DrawLine(px, py, x, y, ch, fg)
		px, py = x, y
	}
	if closed {
		x, y := c.cell(points[0])
		c.screen.DrawLine(px, py, x, y, ch, fg)
	}
}

// FillRect fills the cells covered by the rectangle. Only translation is
// applied; the terminal has no rotated rectangles.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	origin := c.Apply(core.V(x, y))
	rect := core.Rect{
		X: int(math.Floor(origin.X / c.cellW)),
		Y: int(math.Floor(origin.Y / c.cellH)),
		W: int(math.Ceil(w / c.cellW)),
		H: int(math.Ceil(h / c.cellH)),
	}

	if col.A == 0 {
		return
	}
	if col.R == 0 && col.G == 0 && col.B == 0 {
		c.screen.DrawRect(rect, ' ', core.ColorDefault)
		return
	}
	fg, ok := cellColor(col)
	if !ok {
		return
	}
	c.screen.DrawRect(rect, shade(col.A), fg)
}

// Text writes s on the row containing the anchor.
func (c *Canvas) Text(s string, at core.Vec2, align render.Align, col color.RGBA) {
	fg, ok := cellColor(col)
	if !ok {
		return
	}
	x, y := c.cell(at)
	n := len([]rune(s))
	switch align {
	case render.AlignCenter:
		x -= n / 2
	case render.AlignRight:
		x -= n
	}
	c.screen.DrawText(x, y, s, fg)
}

// DrawImage marks the image centre. Terminals have no bitmaps.
func (c *Canvas) DrawImage(_ render.Texture, center core.Vec2, _, _ float64) {
	x, y := c.cell(center)
	c.screen.SetCell(x, y, '■', core.ColorIcon)
}

// cellColor maps a premultiplied colour onto the terminal palette. Fully
// transparent colours are not drawn; red-dominant ones are flame at any alpha.
func cellColor(c color.RGBA) (core.Color, bool) {
	switch {
	case c.A == 0:
		return core.ColorDefault, false
	case int(c.R) > 2*int(c.G) && int(c.R) > 2*int(c.B):
		return core.ColorFlame, true
	case c.A < 96:
		return core.ColorDim, true
	case c.A < 192:
		return core.ColorFaded, true
	default:
		return core.ColorBright, true
	}
}

// shade picks a block character for an alpha value.
func shade(a uint8) rune {
	switch {
	case a < 64:
		return '░'
	case a < 128:
		return '▒'
	case a < 255:
		return '▓'
	default:
		return '█'
	}
}
