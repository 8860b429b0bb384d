package input

import "context"

// Availability is the tilt capability found when the platform is probed.
type Availability int

const (
	TiltUnsupported Availability = iota
	TiltAvailable
	// TiltNeedsPermission means samples only flow after a permission request
	// made from a user gesture is granted.
	TiltNeedsPermission
)

// Permission is the outcome of a tilt permission request.
type Permission int

const (
	PermissionUnsupported Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	}
	return "unsupported"
}

// Reasons passed to the tilt-unavailable callback.
const (
	ReasonDenied              = "denied"
	ReasonUnsupportedPlatform = "unsupported-platform"
)

// TiltSource is a platform orientation sensor.
type TiltSource interface {
	// Probe reports what the platform supports. Called once at startup.
	Probe() Availability

	// RequestPermission asks the platform to enable orientation samples.
	// It may block until the user answers; callers run it off the tick path.
	RequestPermission(ctx context.Context) (Permission, error)

	// Sample returns the latest lateral tilt in degrees. ok is false when
	// there is no new sample or the sample has no lateral axis.
	Sample() (gamma float64, ok bool)
}

// NoTilt is the source for desktops without orientation sensors.
type NoTilt struct{}

func (NoTilt) Probe() Availability { return TiltUnsupported }

func (NoTilt) RequestPermission(context.Context) (Permission, error) {
	return PermissionUnsupported, nil
}

func (NoTilt) Sample() (float64, bool) { return 0, false }
