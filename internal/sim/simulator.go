package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/bgcircles/internal/host"
	"github.com/san-kum/bgcircles/internal/scene"
)

// Simulator runs a component headless on a manual host.
type Simulator struct {
	opts      scene.Options
	logger    *slog.Logger
	metrics   []Metric
	observers []Observer
}

func New(opts scene.Options, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		opts:      opts,
		logger:    logger,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	start := cfg.Start
	if start.IsZero() {
		start = time.Unix(0, 0)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	h := host.NewManual(cfg.Viewport, start)
	h.SetFrameInterval(cfg.Interval)

	result := &Result{
		Seed:    cfg.Seed,
		Metrics: make(map[string]float64),
	}
	render := func(snap scene.Snapshot) {
		result.Renders++
		for _, m := range s.metrics {
			m.Observe(snap)
		}
		for _, o := range s.observers {
			o.OnFrame(snap, h.Now())
		}
	}

	comp := scene.NewComponent(h, s.opts, render,
		scene.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		scene.WithLogger(s.logger),
	)
	if err := comp.Mount(); err != nil {
		return nil, err
	}
	defer comp.Unmount()

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			result.Final = comp.Snapshot()
			return result, ctx.Err()
		default:
		}
		if h.Frame() == 0 {
			break
		}
		result.Ticks++
	}

	result.Final = comp.Snapshot()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	s.logger.Debug("headless run finished", "seed", cfg.Seed, "ticks", result.Ticks, "renders", result.Renders)
	return result, nil
}

func validateConfig(cfg Config) error {
	if !cfg.Viewport.Known() {
		return fmt.Errorf("viewport must be positive, got %s", cfg.Viewport)
	}
	if cfg.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", cfg.Ticks)
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", cfg.Interval)
	}
	return nil
}
