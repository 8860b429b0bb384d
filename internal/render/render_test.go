package render

import (
	"image/color"
	"math"
	"reflect"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ffcc33", color.RGBA{255, 204, 51, 255}, false},
		{"555555", color.RGBA{85, 85, 85, 255}, false},
		{"#fe6", color.RGBA{255, 238, 102, 255}, false},
		{"#ffcc3", color.RGBA{}, true},
		{"#ffcc33ff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q): err=%v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHexColor(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMustColorFallback(t *testing.T) {
	fb := color.RGBA{1, 2, 3, 255}
	if got := mustColor("nope", fb); got != fb {
		t.Errorf("got %v, want fallback", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := withAlpha(c, 1); got != c {
		t.Errorf("alpha 1: got %v", got)
	}
	if got := withAlpha(c, 0); got != (color.RGBA{}) {
		t.Errorf("alpha 0: got %v", got)
	}
	got := withAlpha(c, 0.5)
	if got.A != 127 || got.R != 100 || got.G != 50 || got.B != 25 {
		t.Errorf("alpha 0.5: got %v", got)
	}
	if got := withAlpha(c, 3); got != c {
		t.Errorf("alpha clamps above 1: got %v", got)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"short", 10, []string{"short"}},
		{"the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"a verylongwordhere b", 5, []string{"a", "verylongwordhere", "b"}},
	}
	for _, tt := range tests {
		if got := wrapText(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrapText(%q, %d): got %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestBannerSlidesInAndOut(t *testing.T) {
	b := newBanner()
	if b.visible() {
		t.Fatal("new banner is visible")
	}

	b.show("Tilt control unavailable")
	for i := 0; i < 120; i++ {
		b.update()
	}
	if !b.visible() {
		t.Fatal("banner hidden while showing")
	}
	if math.Abs(b.pos-1) > 0.05 {
		t.Errorf("pos after 2s: got %v, want ~1", b.pos)
	}

	for i := 0; i < bannerFrames+240; i++ {
		b.update()
	}
	if b.visible() {
		t.Errorf("banner still visible after timeout, pos=%v", b.pos)
	}
}
