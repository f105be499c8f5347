package viz

import "github.com/charmbracelet/harmonica"

const (
	// A critically damped spring at this frequency settles in about two
	// seconds, matching the layer's ease-in-out transform transition.
	springFrequency = 3.0
	springDamping   = 1.0
)

// ScaleSmoother eases the displayed scale of each circle toward its
// simulated scale, one update per display frame.
type ScaleSmoother struct {
	spring harmonica.Spring
	pos    map[int]float64
	vel    map[int]float64
}

func NewScaleSmoother(fps int) *ScaleSmoother {
	if fps <= 0 {
		fps = 60
	}
	return &ScaleSmoother{
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		pos:    make(map[int]float64),
		vel:    make(map[int]float64),
	}
}

// Next advances circle id one frame toward target and returns the value to
// draw. The first sample for an id is returned unchanged.
func (s *ScaleSmoother) Next(id int, target float64) float64 {
	p, ok := s.pos[id]
	if !ok {
		s.pos[id] = target
		s.vel[id] = 0
		return target
	}
	p, v := s.spring.Update(p, s.vel[id], target)
	s.pos[id] = p
	s.vel[id] = v
	return p
}

// Current returns the last drawn value for id.
func (s *ScaleSmoother) Current(id int) (float64, bool) {
	p, ok := s.pos[id]
	return p, ok
}
