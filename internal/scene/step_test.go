package scene

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestStepCornerReflection(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	in := []Circle{{ID: 0, X: 799.9, Y: 0.05, SpeedX: 0.15, SpeedY: -0.1, Size: 100, Opacity: 0.2, Scale: 1}}

	out := Step(in, vp, time.UnixMilli(0), PulseAccumulate)
	c := out[0]

	if c.X != 800 {
		t.Errorf("expected x clamped to 800, got %f", c.X)
	}
	if c.SpeedX != -0.15 {
		t.Errorf("expected speedX -0.15, got %f", c.SpeedX)
	}
	if c.Y != 0 {
		t.Errorf("expected y clamped to 0, got %f", c.Y)
	}
	if c.SpeedY != 0.1 {
		t.Errorf("expected speedY 0.1, got %f", c.SpeedY)
	}
}

func TestStepSingleAxisReflection(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	in := []Circle{{X: 99.95, Y: 50, SpeedX: 0.1, SpeedY: -0.1}}

	c := Step(in, vp, time.UnixMilli(0), PulseAccumulate)[0]
	if c.SpeedX >= 0 {
		t.Errorf("expected speedX to flip negative, got %f", c.SpeedX)
	}
	if c.SpeedY != -0.1 {
		t.Errorf("expected speedY unchanged, got %f", c.SpeedY)
	}
	if math.Abs(c.Y-49.9) > 1e-9 {
		t.Errorf("expected y 49.9, got %f", c.Y)
	}
}

func TestStepClampsOutOfBounds(t *testing.T) {
	vp := Viewport{Width: 320, Height: 200}
	rng := rand.New(rand.NewSource(11))

	circles := make([]Circle, 200)
	for i := range circles {
		circles[i] = Circle{
			ID:     i,
			X:      (rng.Float64()*3 - 1) * vp.Width,
			Y:      (rng.Float64()*3 - 1) * vp.Height,
			SpeedX: (rng.Float64() - 0.5) * 0.2,
			SpeedY: (rng.Float64() - 0.5) * 0.2,
			Scale:  1,
		}
	}

	now := time.UnixMilli(1_700_000_000_000)
	for tick := 0; tick < 50; tick++ {
		before := circles
		circles = Step(circles, vp, now, PulseAccumulate)
		for i, c := range circles {
			if c.X < 0 || c.X > vp.Width || c.Y < 0 || c.Y > vp.Height {
				t.Fatalf("tick %d circle %d: (%f, %f) outside viewport", tick, i, c.X, c.Y)
			}
			if math.Abs(c.SpeedX) != math.Abs(before[i].SpeedX) || math.Abs(c.SpeedY) != math.Abs(before[i].SpeedY) {
				t.Fatalf("tick %d circle %d: speed magnitude changed", tick, i)
			}
		}
		now = now.Add(16 * time.Millisecond)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	in := []Circle{{X: 5, Y: 5, SpeedX: 1, SpeedY: 1, Scale: 1}}
	Step(in, Viewport{Width: 10, Height: 10}, time.UnixMilli(0), PulseAccumulate)
	if in[0].X != 5 || in[0].Y != 5 || in[0].Scale != 1 {
		t.Errorf("input mutated: %+v", in[0])
	}
}

func TestStepPulse(t *testing.T) {
	now := time.UnixMilli(4000)
	in := []Circle{
		{ID: 0, X: 1, Y: 1, Scale: 1.02, BaseScale: 1.0},
		{ID: 3, X: 1, Y: 1, Scale: 0.97, BaseScale: 0.97},
	}
	vp := Viewport{Width: 10, Height: 10}

	acc := Step(in, vp, now, PulseAccumulate)
	bounded := Step(in, vp, now, PulseBounded)

	for i, c := range in {
		wave := math.Sin(2 + float64(c.ID))
		if want := c.Scale + wave*0.01; math.Abs(acc[i].Scale-want) > 1e-12 {
			t.Errorf("accumulate circle %d: expected scale %f, got %f", c.ID, want, acc[i].Scale)
		}
		if want := c.BaseScale + wave*0.05; math.Abs(bounded[i].Scale-want) > 1e-12 {
			t.Errorf("bounded circle %d: expected scale %f, got %f", c.ID, want, bounded[i].Scale)
		}
	}
}

func TestStepBoundedStaysBounded(t *testing.T) {
	circles := []Circle{{ID: 1, X: 1, Y: 1, Scale: 1, BaseScale: 1}}
	vp := Viewport{Width: 10, Height: 10}
	now := time.UnixMilli(0)
	for i := 0; i < 10000; i++ {
		circles = Step(circles, vp, now, PulseBounded)
		if s := circles[0].Scale; s < 0.95-1e-9 || s > 1.05+1e-9 {
			t.Fatalf("tick %d: scale %f escaped bounded swing", i, s)
		}
		now = now.Add(16 * time.Millisecond)
	}
}

func TestParsePulseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    PulseMode
		wantErr bool
	}{
		{"", PulseAccumulate, false},
		{"accumulate", PulseAccumulate, false},
		{"bounded", PulseBounded, false},
		{"sine", PulseAccumulate, true},
	}
	for _, tt := range tests {
		got, err := ParsePulseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error state %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
