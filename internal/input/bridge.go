package input

import (
	"context"
	"sync"
)

// Bridge is a TiltSource fed by a host platform, such as a mobile shell that
// owns the real orientation sensor. Host methods may be called from any
// goroutine.
type Bridge struct {
	needsPermission bool

	mu      sync.Mutex
	gamma   float64
	fresh   bool
	pending chan Permission
}

// NewBridge creates a bridge. needsPermission marks platforms where samples
// only flow after the user grants access.
func NewBridge(needsPermission bool) *Bridge {
	return &Bridge{needsPermission: needsPermission}
}

func (b *Bridge) Probe() Availability {
	if b.needsPermission {
		return TiltNeedsPermission
	}
	return TiltAvailable
}

// RequestPermission waits for the host to call Resolve.
func (b *Bridge) RequestPermission(ctx context.Context) (Permission, error) {
	if !b.needsPermission {
		return PermissionGranted, nil
	}

	b.mu.Lock()
	if b.pending == nil {
		b.pending = make(chan Permission, 1)
	}
	ch := b.pending
	b.mu.Unlock()

	select {
	case p := <-ch:
		return p, nil
	case <-ctx.Done():
		b.mu.Lock()
		if b.pending == ch {
			b.pending = nil
		}
		b.mu.Unlock()
		return PermissionUnsupported, ctx.Err()
	}
}

// Pending reports whether a permission request is waiting for the host.
func (b *Bridge) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending != nil
}

// Resolve answers the outstanding permission request. It is a no-op when
// nothing is pending.
func (b *Bridge) Resolve(granted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil {
		return
	}
	p := PermissionDenied
	if granted {
		p = PermissionGranted
	}
	b.pending <- p
	b.pending = nil
}

// Push records a tilt sample from the host sensor.
func (b *Bridge) Push(gamma float64) {
	b.mu.Lock()
	b.gamma = gamma
	b.fresh = true
	b.mu.Unlock()
}

// PushAbsent records a sensor reading without a lateral axis. It replaces
// any unread sample.
func (b *Bridge) PushAbsent() {
	b.mu.Lock()
	b.fresh = false
	b.mu.Unlock()
}

func (b *Bridge) Sample() (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.fresh {
		return 0, false
	}
	b.fresh = false
	return b.gamma, true
}
