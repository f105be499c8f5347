package analysis

import (
	"math"
	"time"
)

// Drift summarizes how a circle's scale evolved over a run.
type Drift struct {
	Samples int
	Start   float64
	Final   float64
	Min     float64
	Max     float64
	Mean    float64
	Swing   float64 // Max - Min
	Period  time.Duration
}

func MeasureDrift(series []float64, interval time.Duration) Drift {
	if len(series) == 0 {
		return Drift{}
	}
	d := Drift{
		Samples: len(series),
		Start:   series[0],
		Final:   series[len(series)-1],
		Min:     math.Inf(1),
		Max:     math.Inf(-1),
	}
	sum := 0.0
	for _, v := range series {
		d.Min = math.Min(d.Min, v)
		d.Max = math.Max(d.Max, v)
		sum += v
	}
	d.Mean = sum / float64(len(series))
	d.Swing = d.Max - d.Min
	d.Period = DominantPeriod(series, interval)
	return d
}
