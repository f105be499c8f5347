package scene

import (
	"math"
	"time"
)

// Step advances every circle by one frame and returns a new slice. The
// input is left untouched. Each circle depends only on its own previous
// state and vp.
func Step(circles []Circle, vp Viewport, now time.Time, mode PulseMode) []Circle {
	next := make([]Circle, len(circles))
	phase := float64(now.UnixMilli()) / pulsePeriodMs
	for i, c := range circles {
		next[i] = stepCircle(c, vp, phase, mode)
	}
	return next
}

func stepCircle(c Circle, vp Viewport, phase float64, mode PulseMode) Circle {
	x := c.X + c.SpeedX
	y := c.Y + c.SpeedY

	// Reflection is a sign flip plus clamp, not an exact bounce.
	if x < 0 || x > vp.Width {
		c.SpeedX = -c.SpeedX
		x = clamp(x, 0, vp.Width)
	}
	if y < 0 || y > vp.Height {
		c.SpeedY = -c.SpeedY
		y = clamp(y, 0, vp.Height)
	}
	c.X, c.Y = x, y

	wave := math.Sin(phase + float64(c.ID))
	switch mode {
	case PulseBounded:
		c.Scale = c.BaseScale + wave*pulseBoundedSwing
	default:
		c.Scale += wave * pulseStep
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
