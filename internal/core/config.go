package core

// RuntimeConfig contains host-supplied settings passed to the engine at
// construction. Nothing in the engine reads viewport size from globals.
type RuntimeConfig struct {
	ScreenW  int     // Viewport width in host units (cells or pixels)
	ScreenH  int     // Viewport height in host units
	CellW    float64 // Field units per horizontal host unit (1 for pixel hosts)
	CellH    float64 // Field units per vertical host unit
	TickRate int     // Frames per second requested from the host (default 60)
	Seed     int64   // RNG seed for target placement and particles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults for a terminal host.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		CellW:    10,
		CellH:    20,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FieldSize returns the play-field dimensions in field units.
func (c RuntimeConfig) FieldSize() (w, h float64) {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return float64(c.ScreenW) * cw, float64(c.ScreenH) * ch
}

// ToField converts a host coordinate to field units, addressing the centre of the cell.
func (c RuntimeConfig) ToField(x, y int) Vec2 {
	if c.CellW <= 1 && c.CellH <= 1 {
		return Vec2{X: float64(x), Y: float64(y)}
	}
	return Vec2{X: (float64(x) + 0.5) * c.CellW, Y: (float64(y) + 0.5) * c.CellH}
}
