// Package scene provides the animated circle field behind the renderers.
//
// The package holds the whole effect as host-independent state:
//
//   - [Circle]: one decorative element (position, size, opacity, velocity, scale)
//   - [Viewport]: the drawing surface size; the zero value means unknown
//   - [Generate]: the one-shot random population
//   - [Step]: the per-frame advance with wall reflection and pulsing
//   - [Holder]: owner of the current viewport and circles
//   - [Component]: wires the above to a [Host] (resize and frame callbacks)
//
// # Example
//
//	c := scene.NewComponent(h, scene.DefaultOptions(), render)
//	if err := c.Mount(); err != nil {
//		return err
//	}
//	defer c.Unmount()
//
// # Thread Safety
//
// Component and Holder are NOT thread-safe. The host is expected to
// serialize every callback it delivers, the way an event loop does.
package scene
