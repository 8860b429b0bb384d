package input

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBridgeProbe(t *testing.T) {
	if got := NewBridge(false).Probe(); got != TiltAvailable {
		t.Errorf("Probe without permission: got %v, want TiltAvailable", got)
	}
	if got := NewBridge(true).Probe(); got != TiltNeedsPermission {
		t.Errorf("Probe with permission: got %v, want TiltNeedsPermission", got)
	}
}

func TestBridgeSamples(t *testing.T) {
	b := NewBridge(false)
	if _, ok := b.Sample(); ok {
		t.Fatal("Sample before any push: got ok")
	}

	b.Push(12.5)
	g, ok := b.Sample()
	if !ok || g != 12.5 {
		t.Fatalf("Sample: got (%v,%v), want (12.5,true)", g, ok)
	}
	if _, ok := b.Sample(); ok {
		t.Error("sample was delivered twice")
	}

	b.Push(3)
	b.PushAbsent()
	if _, ok := b.Sample(); ok {
		t.Error("absent reading should replace the unread sample")
	}
}

func TestBridgeResolve(t *testing.T) {
	b := NewBridge(true)

	// resolving with nothing pending is a no-op
	b.Resolve(true)

	done := make(chan Permission, 1)
	go func() {
		p, err := b.RequestPermission(context.Background())
		if err != nil {
			t.Errorf("RequestPermission: %v", err)
		}
		done <- p
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !b.Pending() {
		if time.Now().After(deadline) {
			t.Fatal("request never became pending")
		}
		time.Sleep(time.Millisecond)
	}
	b.Resolve(false)

	select {
	case p := <-done:
		if p != PermissionDenied {
			t.Errorf("got %v, want denied", p)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("RequestPermission did not return")
	}
	if b.Pending() {
		t.Error("Pending: got true after Resolve")
	}
}

func TestBridgeRequestCancelled(t *testing.T) {
	b := NewBridge(true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.RequestPermission(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err: got %v, want context.Canceled", err)
	}
	if b.Pending() {
		t.Error("Pending: got true after cancellation")
	}
}

func TestBridgeWithoutPermissionGrantsImmediately(t *testing.T) {
	p, err := NewBridge(false).RequestPermission(context.Background())
	if err != nil || p != PermissionGranted {
		t.Errorf("got (%v,%v), want granted", p, err)
	}
}
