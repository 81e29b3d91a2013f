package config

import "sort"

func f64(v float64) *float64 { return &v }

var Presets = map[string]*Config{
	"toss": {
		Body:      "earth",
		InitState: InitStateConfig{Height: 0, Velocity: 19.6},
		Query:     f64(1),
	},
	"moon_toss": {
		Body:      "moon",
		InitState: InitStateConfig{Height: 0, Velocity: 19.6},
		Query:     f64(5),
	},
	"drop": {
		Body:      "earth",
		InitState: InitStateConfig{Height: 45, Velocity: 0},
	},
	"spike": {
		Body:      "earth",
		InitState: InitStateConfig{Height: 20, Velocity: -15},
	},
	"float": {
		Gravity:   f64(0),
		InitState: InitStateConfig{Height: 10, Velocity: 0},
	},
	"drift": {
		Gravity:   f64(0),
		InitState: InitStateConfig{Height: 10, Velocity: -2},
	},
}

// GetPreset returns a copy of the named preset layered over the defaults.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Body = p.Body
	cfg.InitState = p.InitState
	if p.Gravity != nil {
		cfg.Gravity = f64(*p.Gravity)
	}
	if p.Query != nil {
		cfg.Query = f64(*p.Query)
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
