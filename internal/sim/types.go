package sim

import (
	"time"

	"github.com/san-kum/bgcircles/internal/scene"
)

// Metric folds every rendered snapshot into a single number.
type Metric interface {
	Name() string
	Observe(s scene.Snapshot)
	Value() float64
	Reset()
}

// Observer sees every rendered snapshot together with the host clock.
type Observer interface {
	OnFrame(s scene.Snapshot, now time.Time)
}

type Config struct {
	Viewport scene.Viewport
	Ticks    int
	Interval time.Duration

	// Start is the host clock at mount. The zero value means the Unix
	// epoch, so equal seeds give equal runs.
	Start time.Time
	Seed  int64
}

type Result struct {
	Seed int64

	// Ticks counts delivered frames; it stops short of Config.Ticks when
	// the component stops requesting frames.
	Ticks   int
	Renders int
	Final   scene.Snapshot
	Metrics map[string]float64
}
