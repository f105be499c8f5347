package config

import (
	"fmt"
	"os"

	"github.com/san-kum/bgcircles/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS    = 60
	DefaultTicks  = 600
	DefaultTheme  = "midnight"
	DefaultPreset = "default"
)

type Config struct {
	Count      int     `yaml:"count"`
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	MinOpacity float64 `yaml:"min_opacity"`
	MaxOpacity float64 `yaml:"max_opacity"`
	Color      string  `yaml:"color"`
	Background string  `yaml:"background"`
	Animated   bool    `yaml:"animated"`
	ZIndex     int     `yaml:"z_index"`
	ClassName  string  `yaml:"class_name"`
	Pulse      string  `yaml:"pulse"`

	Seed  int64  `yaml:"seed"`
	FPS   int    `yaml:"fps"`
	Ticks int    `yaml:"ticks"`
	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Count:      scene.DefaultCount,
		MinSize:    scene.DefaultMinSize,
		MaxSize:    scene.DefaultMaxSize,
		MinOpacity: scene.DefaultMinOpacity,
		MaxOpacity: scene.DefaultMaxOpacity,
		Color:      scene.DefaultColor,
		Background: scene.DefaultBackground,
		Animated:   true,
		Pulse:      scene.PulseAccumulate.String(),
		FPS:        DefaultFPS,
		Ticks:      DefaultTicks,
		Theme:      DefaultTheme,
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SceneOptions converts the file representation into component options.
func (c *Config) SceneOptions() (scene.Options, error) {
	pulse, err := scene.ParsePulseMode(c.Pulse)
	if err != nil {
		return scene.Options{}, err
	}
	return scene.Options{
		Count:      c.Count,
		MinSize:    c.MinSize,
		MaxSize:    c.MaxSize,
		MinOpacity: c.MinOpacity,
		MaxOpacity: c.MaxOpacity,
		Color:      c.Color,
		Background: c.Background,
		Animated:   c.Animated,
		ZIndex:     c.ZIndex,
		ClassName:  c.ClassName,
		Pulse:      pulse,
	}, nil
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
