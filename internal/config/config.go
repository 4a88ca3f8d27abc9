package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/discflow/internal/disc"
	"github.com/san-kum/discflow/internal/grid"
	"github.com/san-kum/discflow/internal/units"
)

const (
	DefaultMstar    = 1.0
	DefaultInclDeg  = 45.0
	DefaultPsiDeg   = 15.0
	DefaultHalfSize = 200.0
	DefaultNodes    = 64
)

// Config describes a render in observer-friendly units: solar masses,
// degrees and AU. Conversion to the SI radians the model wants happens
// once, in ToParams and BuildGrid.
type Config struct {
	Mstar float64      `yaml:"mstar"` // solar masses
	Incl  float64      `yaml:"incl"`  // degrees
	Psi   float64      `yaml:"psi"`   // degrees
	PA    float64      `yaml:"pa"`    // degrees
	Law   string       `yaml:"law"`
	Get2D bool         `yaml:"get2d"`
	Grid  GridConfig   `yaml:"grid"`
	Surf  SurfaceConfig `yaml:"surface"`
}

// GridConfig sizes the sky-plane mesh. HalfSize is in AU.
type GridConfig struct {
	HalfSize float64 `yaml:"half_size"`
	NX       int     `yaml:"nx"`
	NY       int     `yaml:"ny"`
}

// SurfaceConfig optionally pins the emitting layer to a power-law height
// profile z(R) = Aspect * R0 * (R/R0)^Flare. A zero Aspect keeps the
// cone-derived heights.
type SurfaceConfig struct {
	Aspect float64 `yaml:"aspect"`
	Flare  float64 `yaml:"flare"`
	R0     float64 `yaml:"r0"` // AU
}

func DefaultConfig() *Config {
	return &Config{
		Mstar: DefaultMstar,
		Incl:  DefaultInclDeg,
		Psi:   DefaultPsiDeg,
		Law:   disc.LawKeplerian,
		Get2D: true,
		Grid: GridConfig{
			HalfSize: DefaultHalfSize,
			NX:       DefaultNodes,
			NY:       DefaultNodes,
		},
		Surf: SurfaceConfig{Flare: 1.25, R0: 100},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
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

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// HeightLaw builds the configured emitting-surface law, or nil when the
// cone-derived heights should stand.
func (c *Config) HeightLaw() disc.HeightLaw {
	if c.Surf.Aspect == 0 {
		return nil
	}
	aspect := c.Surf.Aspect
	flare := c.Surf.Flare
	r0 := c.Surf.R0 * units.AU
	return disc.HeightFunc(func(r float64) float64 {
		return aspect * r0 * math.Pow(r/r0, flare)
	})
}

// ToParams converts the config to model parameters.
func (c *Config) ToParams() disc.Params {
	return disc.Params{
		Mstar:     c.Mstar * units.MSun,
		Incl:      radians(c.Incl),
		Psi:       disc.UniformOpening(radians(c.Psi)),
		PA:        radians(c.PA),
		Law:       c.Law,
		Get2D:     c.Get2D,
		HeightLaw: c.HeightLaw(),
	}
}

// BuildGrid constructs the sky-plane mesh the config describes, in SI.
func (c *Config) BuildGrid() (*grid.Grid, error) {
	return grid.NewCartesian(c.Grid.HalfSize*units.AU, c.Grid.NX, c.Grid.NY)
}
