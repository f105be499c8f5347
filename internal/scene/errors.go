package scene

import "errors"

var (
	// ErrUnmounted indicates Mount was called on a component that was torn down.
	ErrUnmounted = errors.New("scene: component already unmounted")

	// ErrUnknownPulse indicates a pulse mode name that is not recognized.
	ErrUnknownPulse = errors.New("scene: unknown pulse mode")
)
