package ebitensrc

import (
	"context"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/lightbulb/internal/input"
)

const (
	gamepadDeadZone = 0.08
	// gamepadMaxGamma maps a full stick deflection to a device held on its side.
	gamepadMaxGamma = 90.0
)

// GamepadTilt emulates lateral tilt with the left stick of the first
// standard-layout gamepad.
type GamepadTilt struct {
	ids []ebiten.GamepadID
}

func (*GamepadTilt) Probe() input.Availability { return input.TiltAvailable }

func (*GamepadTilt) RequestPermission(context.Context) (input.Permission, error) {
	return input.PermissionGranted, nil
}

func (g *GamepadTilt) Sample() (float64, bool) {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	for _, id := range g.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		return stickToGamma(v), true
	}
	return 0, false
}

func stickToGamma(v float64) float64 {
	if math.Abs(v) < gamepadDeadZone {
		return 0
	}
	return math.Max(-1, math.Min(1, v)) * gamepadMaxGamma
}
