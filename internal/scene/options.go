package scene

import "fmt"

const (
	DefaultCount      = 15
	DefaultMinSize    = 50.0
	DefaultMaxSize    = 200.0
	DefaultMinOpacity = 0.1
	DefaultMaxOpacity = 0.3
	DefaultColor      = "#005A8D"
	DefaultBackground = "#0B0B39"

	// speedRange is the full width of the per-axis speed draw, centered at zero.
	speedRange = 0.2

	initialScaleMin   = 0.95
	initialScaleRange = 0.1

	pulsePeriodMs     = 2000.0
	pulseStep         = 0.01
	pulseBoundedSwing = 0.05
)

// PulseMode selects how Scale evolves per tick.
type PulseMode int

const (
	// PulseAccumulate adds sin(t/2000 + id) * 0.01 to the running scale every tick.
	PulseAccumulate PulseMode = iota
	// PulseBounded recomputes scale from BaseScale plus a bounded sine term.
	PulseBounded
)

func (m PulseMode) String() string {
	switch m {
	case PulseBounded:
		return "bounded"
	default:
		return "accumulate"
	}
}

// ParsePulseMode maps a config name to a PulseMode. The empty string is accumulate.
func ParsePulseMode(name string) (PulseMode, error) {
	switch name {
	case "", "accumulate":
		return PulseAccumulate, nil
	case "bounded":
		return PulseBounded, nil
	default:
		return PulseAccumulate, fmt.Errorf("%w: %q", ErrUnknownPulse, name)
	}
}

type Options struct {
	Count      int
	MinSize    float64
	MaxSize    float64
	MinOpacity float64
	MaxOpacity float64
	Color      string
	Background string
	Animated   bool
	ZIndex     int
	ClassName  string
	Pulse      PulseMode
}

func DefaultOptions() Options {
	return Options{
		Count:      DefaultCount,
		MinSize:    DefaultMinSize,
		MaxSize:    DefaultMaxSize,
		MinOpacity: DefaultMinOpacity,
		MaxOpacity: DefaultMaxOpacity,
		Color:      DefaultColor,
		Background: DefaultBackground,
		Animated:   true,
		Pulse:      PulseAccumulate,
	}
}
