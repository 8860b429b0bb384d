//go:build mobile

// Package mobile is the ebitenmobile binding for Android and iOS.
//
// Build with:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.iburimskiy.lightbulb -o build/lightbulb.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Lightbulb.xcframework ./mobile
//
// The host app forwards device orientation through PushTilt and answers
// permission prompts with ResolveTiltPermission.
package mobile

import (
	"log"
	"runtime"

	ebitenmobile "github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/quasilyte/gdata/v2"

	"github.com/iburimskiy/lightbulb/internal/config"
	"github.com/iburimskiy/lightbulb/internal/game"
	"github.com/iburimskiy/lightbulb/internal/input"
)

// iOS asks for motion access on a user gesture; Android grants it up front.
var bridge = input.NewBridge(runtime.GOOS == "ios")

func init() {
	store, err := gdata.Open(gdata.Config{AppName: "lightbulb"})
	if err != nil {
		log.Printf("[Mobile] Preferences storage unavailable: %v", err)
		store = nil
	}

	g, err := game.New(game.Options{
		Config: config.Default(),
		Tilt:   bridge,
		Store:  store,
	})
	if err != nil {
		log.Fatalf("[Mobile] Failed to create game: %v", err)
	}
	ebitenmobile.SetGame(g)
}

// PushTilt forwards a lateral tilt reading in degrees.
func PushTilt(gamma float64) { bridge.Push(gamma) }

// PushTiltAbsent reports an orientation event without a lateral axis.
func PushTiltAbsent() { bridge.PushAbsent() }

// TiltPermissionPending reports whether the game is waiting for the host to
// show the motion permission prompt.
func TiltPermissionPending() bool { return bridge.Pending() }

// ResolveTiltPermission delivers the user's answer to the prompt.
func ResolveTiltPermission(granted bool) { bridge.Resolve(granted) }

// Dummy makes sure ebitenmobile picks up the package.
func Dummy() {}
