package config

import (
	"sort"

	"github.com/san-kum/discflow/internal/disc"
)

var presets = map[string]*Config{
	"midplane": {
		Mstar: 1.0, Incl: 45, Psi: 0, Law: disc.LawKeplerian, Get2D: true,
		Grid: GridConfig{HalfSize: 200, NX: 64, NY: 64},
	},
	"flared": {
		Mstar: 1.0, Incl: 45, Psi: 20, Law: disc.LawKeplerianVertical, Get2D: true,
		Grid: GridConfig{HalfSize: 200, NX: 64, NY: 64},
	},
	"surface": {
		Mstar: 1.0, Incl: 50, Law: disc.LawKeplerianVertical, Get2D: true,
		Grid: GridConfig{HalfSize: 300, NX: 96, NY: 96},
		Surf: SurfaceConfig{Aspect: 0.15, Flare: 1.25, R0: 100},
	},
	"faceon": {
		Mstar: 1.0, Incl: 5, Psi: 10, Law: disc.LawKeplerian, Get2D: true,
		Grid: GridConfig{HalfSize: 150, NX: 48, NY: 48},
	},
	"massive": {
		Mstar: 2.5, Incl: 60, Psi: 15, Law: disc.LawKeplerian, Get2D: true,
		Grid: GridConfig{HalfSize: 400, NX: 96, NY: 96},
	},
}

// GetPreset returns a named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	return presets[name]
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
