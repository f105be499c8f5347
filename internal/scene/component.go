package scene

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// StepperState is the animation loop state.
type StepperState int

const (
	Inactive StepperState = iota
	Running
)

func (s StepperState) String() string {
	if s == Running {
		return "running"
	}
	return "inactive"
}

type ComponentOption func(*Component)

// WithRand sets the random source used by the initial population.
func WithRand(rng *rand.Rand) ComponentOption {
	return func(c *Component) { c.rng = rng }
}

func WithLogger(l *slog.Logger) ComponentOption {
	return func(c *Component) { c.log = l }
}

// Component binds the circle field to a Host: it generates the population
// once the viewport is known, follows resizes and runs the frame loop.
type Component struct {
	id     string
	host   Host
	opts   Options
	holder *Holder
	rng    *rand.Rand
	log    *slog.Logger
	render func(Snapshot)

	mounted   bool
	unmounted bool
	populated bool

	resizeToken Token
	frameToken  Token
	state       StepperState
	// generation is bumped on every start and stop; a frame callback
	// scheduled under an older generation does nothing.
	generation uint64
}

// NewComponent creates an unmounted component. render is called after
// every state change with a copy of the state and must not retain it.
func NewComponent(h Host, opts Options, render func(Snapshot), copts ...ComponentOption) *Component {
	c := &Component{
		id:     uuid.NewString(),
		host:   h,
		opts:   opts,
		render: render,
	}
	for _, o := range copts {
		o(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	c.log = c.log.With("component", c.id)
	c.holder = NewHolder(c.notify)
	return c
}

func (c *Component) ID() string { return c.id }

func (c *Component) Options() Options { return c.opts }

func (c *Component) State() StepperState { return c.state }

func (c *Component) Snapshot() Snapshot { return c.holder.Snapshot() }

// Mount subscribes to resize notifications, reads the initial viewport and
// starts the frame loop when animation is enabled.
func (c *Component) Mount() error {
	if c.unmounted {
		return ErrUnmounted
	}
	if c.mounted {
		return nil
	}
	c.mounted = true
	c.resizeToken = c.host.OnResize(c.handleResize)
	c.log.Debug("mounted", "count", c.opts.Count, "animated", c.opts.Animated)
	c.setViewport(c.host.Viewport())
	return nil
}

// Unmount cancels the pending frame and the resize subscription. Callbacks
// the host still delivers afterwards are ignored.
func (c *Component) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.unmounted = true
	c.reconcile()
	c.host.RemoveResize(c.resizeToken)
	c.log.Debug("unmounted")
}

func (c *Component) SetAnimated(animated bool) {
	c.opts.Animated = animated
	c.reconcile()
}

// SetOptions replaces the options. Population settings only take effect
// while no population exists yet.
func (c *Component) SetOptions(opts Options) {
	c.opts = opts
	c.reconcile()
}

func (c *Component) handleResize() {
	if !c.mounted {
		return
	}
	c.setViewport(c.host.Viewport())
}

func (c *Component) setViewport(vp Viewport) {
	c.holder.SetViewport(vp)
	if !c.populated && vp.Known() {
		c.populated = true
		c.holder.SetCircles(Generate(vp, c.opts, c.rng))
		c.log.Debug("population generated", "viewport", vp.String(), "count", c.holder.Len())
	}
	c.reconcile()
}

func (c *Component) reconcile() {
	want := c.mounted && c.opts.Animated && c.holder.Viewport().Known()
	switch {
	case want && c.state == Inactive:
		c.state = Running
		c.generation++
		c.schedule()
		c.log.Debug("stepper started")
	case !want && c.state == Running:
		c.state = Inactive
		c.generation++
		c.host.CancelFrame(c.frameToken)
		c.log.Debug("stepper stopped")
	}
}

func (c *Component) schedule() {
	gen := c.generation
	c.frameToken = c.host.RequestFrame(func() { c.tick(gen) })
}

func (c *Component) tick(gen uint64) {
	if gen != c.generation || c.state != Running {
		return
	}
	now := c.host.Now()
	c.holder.SetCircles(Step(c.holder.circles, c.holder.Viewport(), now, c.opts.Pulse))
	// The render callback may have stopped the loop.
	if gen != c.generation {
		return
	}
	c.schedule()
}

func (c *Component) notify(s Snapshot) {
	if c.render == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("render failed", "err", fmt.Sprint(r))
		}
	}()
	c.render(s)
}
