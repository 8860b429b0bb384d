//go:build !android && !ios

package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

// warn shows a native warning dialog without blocking the game loop.
var warn = func(title, text string) {
	go func() {
		err := zenity.Warning(text, zenity.Title(title))
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("[Game] Failed to show dialog: %v", err)
		}
	}()
}
