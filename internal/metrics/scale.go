package metrics

import (
	"math"

	"github.com/san-kum/bgcircles/internal/scene"
)

// MeanScale averages the scale of every circle over every snapshot.
type MeanScale struct {
	name    string
	samples int
	total   float64
}

func NewMeanScale() *MeanScale {
	return &MeanScale{name: "mean_scale"}
}

func (m *MeanScale) Name() string { return m.name }

func (m *MeanScale) Observe(s scene.Snapshot) {
	for _, c := range s.Circles {
		m.total += c.Scale
		m.samples++
	}
}

func (m *MeanScale) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanScale) Reset() {
	m.total = 0
	m.samples = 0
}

// MinScale is the smallest scale any circle reached.
type MinScale struct {
	name string
	min  float64
	seen bool
}

func NewMinScale() *MinScale {
	return &MinScale{name: "min_scale"}
}

func (m *MinScale) Name() string { return m.name }

func (m *MinScale) Observe(s scene.Snapshot) {
	for _, c := range s.Circles {
		if !m.seen || c.Scale < m.min {
			m.min = c.Scale
			m.seen = true
		}
	}
}

func (m *MinScale) Value() float64 {
	if !m.seen {
		return math.NaN()
	}
	return m.min
}

func (m *MinScale) Reset() {
	m.min = 0
	m.seen = false
}

// ScaleDrift is the largest relative departure of any circle's scale from
// the scale it was first observed with.
type ScaleDrift struct {
	name     string
	initial  map[int]float64
	maxDrift float64
}

func NewScaleDrift() *ScaleDrift {
	return &ScaleDrift{
		name:    "scale_drift",
		initial: make(map[int]float64),
	}
}

func (d *ScaleDrift) Name() string { return d.name }

func (d *ScaleDrift) Observe(s scene.Snapshot) {
	for _, c := range s.Circles {
		initial, ok := d.initial[c.ID]
		if !ok {
			d.initial[c.ID] = c.Scale
			continue
		}
		if initial != 0 {
			drift := math.Abs(c.Scale-initial) / math.Abs(initial)
			d.maxDrift = math.Max(d.maxDrift, drift)
		}
	}
}

func (d *ScaleDrift) Value() float64 {
	return d.maxDrift
}

func (d *ScaleDrift) Reset() {
	d.initial = make(map[int]float64)
	d.maxDrift = 0
}

// Collapse is the fraction of circles whose scale reached zero or below at
// least once, at which point they disappear from the layer.
type Collapse struct {
	name      string
	seen      map[int]bool
	collapsed map[int]bool
}

func NewCollapse() *Collapse {
	return &Collapse{
		name:      "collapse",
		seen:      make(map[int]bool),
		collapsed: make(map[int]bool),
	}
}

func (c *Collapse) Name() string { return c.name }

func (c *Collapse) Observe(s scene.Snapshot) {
	for _, ci := range s.Circles {
		c.seen[ci.ID] = true
		if ci.Scale <= 0 {
			c.collapsed[ci.ID] = true
		}
	}
}

func (c *Collapse) Value() float64 {
	if len(c.seen) == 0 {
		return 0
	}
	return float64(len(c.collapsed)) / float64(len(c.seen))
}

func (c *Collapse) Reset() {
	c.seen = make(map[int]bool)
	c.collapsed = make(map[int]bool)
}
