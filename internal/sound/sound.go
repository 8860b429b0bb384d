// Package sound plays the switch click when the light is toggled.
package sound

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/lightbulb/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickDuration = 40 * time.Millisecond
	clickDecay    = 0.008 // seconds
	clickGain     = 0.6
	onPitch       = 1400.0
	offPitch      = 900.0

	resampleQuality = 4
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player plays clicks through the speaker. A nil *Player is silent.
type Player struct {
	enabled bool
	volume  float64
	on, off *beep.Buffer
}

// New initialises the speaker and prepares the click sounds. It returns nil
// when no audio device is available.
func New(cfg config.Sound) *Player {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		log.Printf("[Sound] Speaker unavailable: %v (clicks disabled)", err)
		return nil
	}

	p := &Player{
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		on:      synthBuffer(onPitch),
		off:     synthBuffer(offPitch),
	}
	if cfg.Sample != "" {
		buf, err := loadSample(cfg.Sample)
		if err != nil {
			log.Printf("[Sound] Failed to load click sample %s: %v (using synthesised click)", cfg.Sample, err)
		} else {
			p.on, p.off = buf, buf
		}
	}
	return p
}

// Click plays the switch sound for the new light state.
func (p *Player) Click(on bool) {
	if p == nil || !p.enabled || p.volume <= 0 {
		return
	}
	buf := p.off
	if on {
		buf = p.on
	}
	speaker.Play(withVolume(buf.Streamer(0, buf.Len()), p.volume))
}

func (p *Player) SetEnabled(enabled bool) {
	if p == nil {
		return
	}
	p.enabled = enabled
}

func (p *Player) SetVolume(volume float64) {
	if p == nil {
		return
	}
	p.volume = volume
}

func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(volume),
		Silent:   volume <= 0,
	}
}

// click returns a short decaying sine burst.
func click(freq float64) beep.Streamer {
	n := sampleRate.N(clickDuration)
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && i < n; k++ {
			t := float64(i) / float64(sampleRate)
			v := clickGain * math.Sin(2*math.Pi*freq*t) * math.Exp(-t/clickDecay)
			samples[k][0], samples[k][1] = v, v
			i++
		}
		return k, true
	})
}

func synthBuffer(freq float64) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(click(freq))
	return buf
}

// loadSample decodes a wav, mp3 or flac file into memory at the speaker rate.
func loadSample(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		sf       beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, sf, err = wav.Decode(f)
	case ".mp3":
		streamer, sf, err = mp3.Decode(f)
	case ".flac":
		streamer, sf, err = flac.Decode(f)
	default:
		return nil, errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if sf.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, sf.SampleRate, sampleRate, streamer)
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}
