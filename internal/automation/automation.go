// Package automation replays scripted host events against a component.
package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/bgcircles/internal/host"
	"github.com/san-kum/bgcircles/internal/scene"
	"gopkg.in/yaml.v3"
)

var ErrUnknownAction = errors.New("automation: unknown action")

// Step actions.
const (
	ActionResize  = "resize"
	ActionFrames  = "frames"
	ActionAdvance = "advance"
	ActionAnimate = "animate"
	ActionPause   = "pause"
	ActionUnmount = "unmount"
)

// Scenario defines a scripted sequence of host events
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Initial viewport; zero means unknown until the first resize.
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Steps  []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single host event
type ScenarioStep struct {
	Action string        `yaml:"action"`
	Width  float64       `yaml:"width"`
	Height float64       `yaml:"height"`
	Frames int           `yaml:"frames"`
	Wait   time.Duration `yaml:"wait"`
	SaveAs string        `yaml:"save_as"`
}

// StepResult is the component state right after a step.
type StepResult struct {
	Step      int
	Action    string
	Delivered int
	State     scene.StepperState
	Snapshot  scene.Snapshot
	SaveAs    string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario mounts a component on a manual host and applies every step in
// order. Results collected before a failing step are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, opts scene.Options, seed int64, logger *slog.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	h := host.NewManual(scene.Viewport{Width: scenario.Width, Height: scenario.Height}, time.Unix(0, 0))
	comp := scene.NewComponent(h, opts, nil,
		scene.WithRand(rand.New(rand.NewSource(seed))),
		scene.WithLogger(logger),
	)
	if err := comp.Mount(); err != nil {
		return nil, err
	}
	defer comp.Unmount()

	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		delivered := 0
		switch step.Action {
		case ActionResize:
			h.Resize(step.Width, step.Height)
		case ActionFrames:
			delivered = h.Run(step.Frames)
		case ActionAdvance:
			h.Advance(step.Wait)
		case ActionAnimate:
			comp.SetAnimated(true)
		case ActionPause:
			comp.SetAnimated(false)
		case ActionUnmount:
			comp.Unmount()
		default:
			return results, fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, step.Action)
		}

		logger.Debug("scenario step", "step", i+1, "action", step.Action, "delivered", delivered)
		results = append(results, StepResult{
			Step:      i + 1,
			Action:    step.Action,
			Delivered: delivered,
			State:     comp.State(),
			Snapshot:  comp.Snapshot(),
			SaveAs:    step.SaveAs,
		})
	}

	return results, nil
}
