package scene

import "time"

// Token identifies one subscription handed out by a Host.
type Token uint64

// Host is the environment a Component lives in. Every callback a Host
// delivers must run on the same goroutine as the Component's methods.
//
//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . Host
type Host interface {
	// Viewport returns the current drawing surface size.
	Viewport() Viewport
	// OnResize registers fn to run after every viewport change.
	OnResize(fn func()) Token
	RemoveResize(t Token)
	// RequestFrame schedules fn for the next display refresh, once.
	RequestFrame(fn func()) Token
	CancelFrame(t Token)
	Now() time.Time
}
