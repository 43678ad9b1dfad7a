package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/input"
)

// mousePointer is the pointer id of the mouse. Touch ids are never negative.
const mousePointer = -1

var gameKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyS:          input.KeyS,
}

// poller samples keyboard, mouse and touch state once per tick.
type poller struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
}

func (p *poller) poll(w, h int) input.Poll {
	state := input.Poll{
		Keys:     make(map[input.Key]bool),
		Pointers: make(map[int]core.Vec2),
		Focused:  ebiten.IsFocused(),
		Width:    float64(w),
		Height:   float64(h),
	}

	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if gk, ok := gameKeys[k]; ok {
			state.Keys[gk] = true
		}
	}

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		x, y := ebiten.TouchPosition(id)
		state.Pointers[int(id)] = core.V(float64(x), float64(y))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		state.Pointers[mousePointer] = core.V(float64(x), float64(y))
	}

	return state
}

// quitPressed reports whether the player asked to close the window.
func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
