// Package scenario loads named simulation configurations from TOML so
// the CLI can start the solver from a file instead of hardcoded
// constants.
package scenario

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jsommer/windtunnel/pkg/fluid"
)

// Config is the on-disk shape of a scenario file.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Viscosity      float32 `toml:"viscosity"`
	Diffusion      float32 `toml:"diffusion"`
	InflowVelocity float32 `toml:"inflow_velocity"`
	Iterations     int     `toml:"iterations"`
	FrontalSource  bool    `toml:"frontal_source"`

	ObstacleMeshPath string `toml:"obstacle_mesh_path"`

	SliceZ         float32 `toml:"slice_z"`
	SliceThickness float32 `toml:"slice_thickness"`
}

// Default returns the scenario matching FluidSolver's own built-in
// defaults, for callers that want a config file structure without
// requiring one to exist on disk.
func Default() Config {
	return Config{
		Width:          160,
		Height:         120,
		Viscosity:      1.33e-4,
		Diffusion:      0.0,
		InflowVelocity: 1.6,
		Iterations:     40,
		FrontalSource:  false,
		SliceZ:         0,
		SliceThickness: 1,
	}
}

// Load reads and decodes a TOML scenario file at path, filling in
// Default's values for anything the file doesn't specify.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("scenario: decode %s: %w", path, err)
	}
	if cfg.Width < 4 || cfg.Height < 4 {
		return Config{}, fmt.Errorf("scenario: %s: width/height must be >= 4, got %dx%d", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// Apply copies the five mutable solver configuration fields from cfg onto
// an already-constructed solver. Width/Height are not touched here since
// they're fixed at construction; callers use them to size the New call.
func Apply(cfg Config, f *fluid.FluidSolver) {
	f.Viscosity = cfg.Viscosity
	f.Diffusion = cfg.Diffusion
	f.InflowVelocity = cfg.InflowVelocity
	f.Iterations = cfg.Iterations
	f.FrontalSource = cfg.FrontalSource
}
