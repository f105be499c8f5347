package scene

import "fmt"

type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Known reports whether the host has reported real dimensions.
func (v Viewport) Known() bool {
	return v.Width > 0 && v.Height > 0
}

func (v Viewport) String() string {
	return fmt.Sprintf("%.0fx%.0f", v.Width, v.Height)
}

type Circle struct {
	ID        int     `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Size      float64 `json:"size"`
	Opacity   float64 `json:"opacity"`
	SpeedX    float64 `json:"speed_x"`
	SpeedY    float64 `json:"speed_y"`
	Scale     float64 `json:"scale"`
	BaseScale float64 `json:"base_scale"`
}

// Diameter is the rendered diameter in pixels.
func (c Circle) Diameter() float64 {
	return c.Size * c.Scale
}

// Snapshot is a copy of the state a renderer draws from.
type Snapshot struct {
	Viewport Viewport
	Circles  []Circle
}

func cloneCircles(cs []Circle) []Circle {
	if cs == nil {
		return nil
	}
	out := make([]Circle, len(cs))
	copy(out, cs)
	return out
}
