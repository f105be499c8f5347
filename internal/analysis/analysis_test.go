package analysis

import (
	"math"
	"testing"
	"time"
)

func TestDominantPeriod(t *testing.T) {
	interval := time.Second / 60
	data := make([]float64, 1200)
	for i := range data {
		ts := float64(i) / 60
		data[i] = 1 + 0.2*math.Sin(2*math.Pi*ts/2)
	}

	got := DominantPeriod(data, interval)
	if diff := got - 2*time.Second; diff < -50*time.Millisecond || diff > 50*time.Millisecond {
		t.Errorf("expected period ~2s, got %v", got)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	data := []float64{1, 1, 1, 1}
	if got := DominantPeriod(data, time.Millisecond); got != 0 {
		t.Errorf("expected no period for a flat series, got %v", got)
	}
	if PowerSpectrum([]float64{1}) != nil {
		t.Error("expected nil spectrum for a single sample")
	}
}

func TestMeasureDrift(t *testing.T) {
	d := MeasureDrift([]float64{1, 1.5, 0.5, 1.2}, time.Second)
	if d.Samples != 4 || d.Start != 1 || d.Final != 1.2 {
		t.Errorf("unexpected endpoints %+v", d)
	}
	if d.Min != 0.5 || d.Max != 1.5 || d.Swing != 1 {
		t.Errorf("unexpected range %+v", d)
	}
	if math.Abs(d.Mean-1.05) > 1e-12 {
		t.Errorf("expected mean 1.05, got %f", d.Mean)
	}

	if empty := MeasureDrift(nil, time.Second); empty.Samples != 0 {
		t.Errorf("expected zero drift for empty series, got %+v", empty)
	}
}
