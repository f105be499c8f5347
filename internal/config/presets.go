package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"dense": withDefaults(func(c *Config) {
		c.Count = 60
		c.MinSize, c.MaxSize = 20, 80
	}),
	"calm": withDefaults(func(c *Config) {
		c.Count = 6
		c.MinSize, c.MaxSize = 150, 320
		c.MinOpacity, c.MaxOpacity = 0.05, 0.15
		c.Pulse = "bounded"
	}),
	"bokeh": withDefaults(func(c *Config) {
		c.Count = 25
		c.Color = "#F5B041"
		c.Background = "#1B1B1B"
		c.MinOpacity, c.MaxOpacity = 0.15, 0.45
		c.Theme = "ember"
	}),
	"still": withDefaults(func(c *Config) {
		c.Animated = false
	}),
}

func withDefaults(apply func(*Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil when it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
