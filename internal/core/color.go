package core

// Color is the foreground of a screen cell. The terminal palette is small:
// one colour per kind of mark the field draws.
type Color uint8

const (
	ColorDefault Color = iota // Terminal foreground
	ColorBright               // Ship, projectiles, target rims, text
	ColorFaded                // Half-spent particles, lit controls
	ColorDim                  // Dying particles, idle controls
	ColorFlame                // Thrust flame
	ColorIcon                 // Target icon marker
	colorCount
)

var ansiCodes = [colorCount]string{
	ColorBright: "15",
	ColorFaded:  "245",
	ColorDim:    "240",
	ColorFlame:  "9",
	ColorIcon:   "14",
}

// ANSI returns the 256-colour code of c, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Colors returns every cell colour.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
