package input

import (
	"context"
	"log"
)

type pointerSource int

const (
	pointerNone pointerSource = iota
	pointerMouse
	pointerTouch
)

type tiltState int

const (
	tiltDisabled tiltState = iota
	tiltAwaitingGesture
	tiltRequesting
	tiltOn
)

type permissionResult struct {
	permission Permission
	err        error
}

// Sampler converts raw frames into Events. Capability detection happens once
// in NewSampler; everything else runs on the update goroutine.
type Sampler struct {
	ctx           context.Context
	src           TiltSource
	onUnavailable func(reason string)

	drag         pointerSource
	touchID      int
	lastX, lastY float64

	tilt     tiltState
	permCh   chan permissionResult
	notified bool

	events []Event
}

// NewSampler probes src and prepares tilt handling. onUnavailable, if set,
// is called at most once when tilt control cannot be used.
func NewSampler(ctx context.Context, src TiltSource, onUnavailable func(reason string)) *Sampler {
	if src == nil {
		src = NoTilt{}
	}
	s := &Sampler{
		ctx:           ctx,
		src:           src,
		onUnavailable: onUnavailable,
		events:        make([]Event, 0, 8),
	}

	switch src.Probe() {
	case TiltAvailable:
		s.tilt = tiltOn
	case TiltNeedsPermission:
		s.tilt = tiltAwaitingGesture
	default:
		s.tilt = tiltDisabled
		s.unavailable(ReasonUnsupportedPlatform)
	}
	return s
}

// Dragging reports whether a pointer grab is active.
func (s *Sampler) Dragging() bool { return s.drag != pointerNone }

// TiltEnabled reports whether tilt samples are being forwarded.
func (s *Sampler) TiltEnabled() bool { return s.tilt == tiltOn }

// Sample returns this frame's events. The returned slice is reused by the
// next call.
func (s *Sampler) Sample(f Frame, hit HitCircle) []Event {
	s.events = s.events[:0]

	gesture := f.MouseJustPressed || len(f.JustTouched) > 0 || f.AnyKey
	if gesture && s.tilt == tiltAwaitingGesture {
		s.requestPermission()
	}
	s.pollPermission()

	s.samplePointer(f, hit)

	if f.ToggleKey {
		s.events = append(s.events, Event{Kind: ToggleRequest})
	}

	if s.tilt == tiltOn {
		if gamma, ok := s.src.Sample(); ok {
			s.events = append(s.events, Event{Kind: Tilt, Gamma: gamma})
		}
	}
	return s.events
}

func (s *Sampler) samplePointer(f Frame, hit HitCircle) {
	switch s.drag {
	case pointerNone:
		// touch first; only the first new touch can grab
		if len(f.JustTouched) > 0 {
			t := f.JustTouched[0]
			if hit.Contains(float64(t.X), float64(t.Y)) {
				s.touchID = t.ID
				s.begin(pointerTouch, float64(t.X), float64(t.Y))
			}
			return
		}
		if f.MouseJustPressed && hit.Contains(float64(f.MouseX), float64(f.MouseY)) {
			s.begin(pointerMouse, float64(f.MouseX), float64(f.MouseY))
		}

	case pointerTouch:
		for _, t := range f.Touches {
			if t.ID == s.touchID {
				s.move(float64(t.X), float64(t.Y))
				return
			}
		}
		// touch lifted: its position is gone, release at the last one seen
		s.end(s.lastY)

	case pointerMouse:
		s.move(float64(f.MouseX), float64(f.MouseY))
		if f.MouseJustReleased || !f.MousePressed {
			s.end(float64(f.MouseY))
		}
	}
}

func (s *Sampler) begin(src pointerSource, x, y float64) {
	s.drag = src
	s.lastX, s.lastY = x, y
	s.events = append(s.events, Event{Kind: DragBegin, X: x, Y: y})
}

func (s *Sampler) move(x, y float64) {
	if x == s.lastX && y == s.lastY {
		return
	}
	s.lastX, s.lastY = x, y
	s.events = append(s.events, Event{Kind: DragMove, X: x, Y: y})
}

func (s *Sampler) end(y float64) {
	s.drag = pointerNone
	s.events = append(s.events, Event{Kind: DragEnd, Y: y})
}

func (s *Sampler) requestPermission() {
	s.tilt = tiltRequesting
	ch := make(chan permissionResult, 1)
	s.permCh = ch
	go func() {
		p, err := s.src.RequestPermission(s.ctx)
		ch <- permissionResult{permission: p, err: err}
	}()
}

func (s *Sampler) pollPermission() {
	if s.tilt != tiltRequesting {
		return
	}
	select {
	case r := <-s.permCh:
		s.permCh = nil
		s.applyPermission(r)
	default:
	}
}

func (s *Sampler) applyPermission(r permissionResult) {
	if r.err != nil {
		log.Printf("[Input] Tilt permission request failed: %v", r.err)
		s.tilt = tiltDisabled
		return
	}
	log.Printf("[Input] Tilt permission %s", r.permission)
	switch r.permission {
	case PermissionGranted:
		s.tilt = tiltOn
	case PermissionDenied:
		s.tilt = tiltDisabled
		s.unavailable(ReasonDenied)
	default:
		s.tilt = tiltDisabled
		s.unavailable(ReasonUnsupportedPlatform)
	}
}

func (s *Sampler) unavailable(reason string) {
	if s.notified {
		return
	}
	s.notified = true
	if s.onUnavailable != nil {
		s.onUnavailable(reason)
	}
}
