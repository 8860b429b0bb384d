// Package ebitensrc reads input from ebiten: per-frame pointer and key
// state, key names, and gamepad tilt. Everything else in input stays free
// of the display stack.
package ebitensrc

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/lightbulb/internal/input"
)

// ParseKey resolves a key name such as "Space" or "Enter".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("input.toggleKey: %w", err)
	}
	return k, nil
}

// Poller reads an input.Frame from ebiten each tick, reusing its buffers.
type Poller struct {
	toggleKey ebiten.Key
	ids       []ebiten.TouchID
	keys      []ebiten.Key
	touches   []input.Touch
	just      []input.Touch
}

func NewPoller(toggleKey ebiten.Key) *Poller {
	return &Poller{toggleKey: toggleKey}
}

// Poll samples the current input state. Must be called from Update.
func (p *Poller) Poll() input.Frame {
	var f input.Frame
	f.MouseX, f.MouseY = ebiten.CursorPosition()
	f.MousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	f.MouseJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	f.MouseJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	p.ids = ebiten.AppendTouchIDs(p.ids[:0])
	p.touches = p.appendTouches(p.touches[:0])
	f.Touches = p.touches

	p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
	p.just = p.appendTouches(p.just[:0])
	f.JustTouched = p.just

	f.ToggleKey = inpututil.IsKeyJustPressed(p.toggleKey)
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	f.AnyKey = len(p.keys) > 0
	return f
}

func (p *Poller) appendTouches(dst []input.Touch) []input.Touch {
	for _, id := range p.ids {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, input.Touch{ID: int(id), X: x, Y: y})
	}
	return dst
}
