package scene

import "math/rand"

// Generate draws a fresh population for vp. Ranges are not validated: an
// inverted range still yields values inside the reversed interval.
func Generate(vp Viewport, opts Options, rng *rand.Rand) []Circle {
	if opts.Count <= 0 {
		return []Circle{}
	}

	circles := make([]Circle, opts.Count)
	for i := range circles {
		scale := initialScaleMin + rng.Float64()*initialScaleRange
		circles[i] = Circle{
			ID:        i,
			X:         rng.Float64() * vp.Width,
			Y:         rng.Float64() * vp.Height,
			Size:      opts.MinSize + rng.Float64()*(opts.MaxSize-opts.MinSize),
			Opacity:   opts.MinOpacity + rng.Float64()*(opts.MaxOpacity-opts.MinOpacity),
			SpeedX:    (rng.Float64() - 0.5) * speedRange,
			SpeedY:    (rng.Float64() - 0.5) * speedRange,
			Scale:     scale,
			BaseScale: scale,
		}
	}
	return circles
}
