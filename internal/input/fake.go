package input

import (
	"context"
	"sync"
)

// FakeTilt is a test double that returns scripted tilt samples and a fixed
// permission answer.
type FakeTilt struct {
	// Availability is returned by Probe.
	Availability Availability

	// Answer and Err are returned by RequestPermission.
	Answer Permission
	Err    error

	// Samples are consumed one per Sample call; when exhausted Sample
	// reports no data.
	Samples []FakeSample

	index    int
	mu       sync.Mutex
	requests int
}

// FakeSample is one scripted orientation reading. Valid is false for a
// reading without a lateral axis.
type FakeSample struct {
	Gamma float64
	Valid bool
}

func (f *FakeTilt) Probe() Availability { return f.Availability }

func (f *FakeTilt) RequestPermission(context.Context) (Permission, error) {
	f.mu.Lock()
	f.requests++
	f.mu.Unlock()
	return f.Answer, f.Err
}

// Requests returns how many permission requests were made.
func (f *FakeTilt) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *FakeTilt) Sample() (float64, bool) {
	if f.index >= len(f.Samples) {
		return 0, false
	}
	s := f.Samples[f.index]
	f.index++
	return s.Gamma, s.Valid
}
