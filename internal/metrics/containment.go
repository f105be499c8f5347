package metrics

import "github.com/san-kum/bgcircles/internal/scene"

// Containment is the fraction of populated snapshots in which every circle
// center lies inside the viewport.
type Containment struct {
	name       string
	violations int
	samples    int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(s scene.Snapshot) {
	if len(s.Circles) == 0 {
		return
	}
	c.samples++
	for _, ci := range s.Circles {
		if ci.X < 0 || ci.X > s.Viewport.Width || ci.Y < 0 || ci.Y > s.Viewport.Height {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
