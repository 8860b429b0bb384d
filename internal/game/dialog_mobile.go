//go:build android || ios

package game

// warn is a no-op on mobile; the banner carries the message.
var warn = func(title, text string) {}
