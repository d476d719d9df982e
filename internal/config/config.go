// Package config loads the YAML run configuration of the patchconnect CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/johnpfay/PatchConnect/core"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = fmt.Errorf("config: invalid configuration: %w", core.ErrInvalidInput)

// RunConfig describes one end-to-end connectivity run.
type RunConfig struct {
	Input struct {
		Cost     string  `yaml:"cost"`      // ESRI ASCII cost raster; empty means unit cost
		Patches  string  `yaml:"patches"`   // ESRI ASCII patch raster
		Conn     int     `yaml:"conn"`      // 4 or 8
		CellSize float64 `yaml:"cell_size"` // overrides the raster header when > 0
	} `yaml:"input"`

	Extract struct {
		Workers int     `yaml:"workers"`  // 0 selects the number of CPUs
		MaxCost float64 `yaml:"max_cost"` // 0 disables the cutoff
		Paths   bool    `yaml:"paths"`
		Fields  bool    `yaml:"fields"`
	} `yaml:"extract"`

	Sweep struct {
		Min       float64 `yaml:"min"`
		Max       float64 `yaml:"max"`
		Step      float64 `yaml:"step"`
		EarlyStop bool    `yaml:"early_stop"`
	} `yaml:"sweep"`

	Attributes struct {
		MaxDistance float64 `yaml:"max_distance"` // 0 skips the attribute table
	} `yaml:"attributes"`

	Output struct {
		Dir         string `yaml:"dir"`
		Edges       string `yaml:"edges"`
		Thresholds  string `yaml:"thresholds"`
		Sensitivity string `yaml:"sensitivity"`
		Attributes  string `yaml:"attributes"`
		Spanning    string `yaml:"spanning"`
		Paths       string `yaml:"paths"`
		Fields      string `yaml:"fields"`
		Precision   int    `yaml:"precision"`
	} `yaml:"output"`

	Store struct {
		Path string `yaml:"path"` // empty disables persistence
	} `yaml:"store"`
}

// Default returns a RunConfig with every optional value filled in.
func Default() *RunConfig {
	var c RunConfig
	c.Input.Conn = 8
	c.Sweep.Step = 100
	c.Output.Dir = "."
	c.Output.Edges = "edges.csv"
	c.Output.Thresholds = "thresholds.csv"
	c.Output.Sensitivity = "sensitivity.csv"
	c.Output.Attributes = "attributes.csv"
	c.Output.Spanning = "spanning.csv"
	c.Output.Paths = "paths.csv"
	c.Output.Fields = "fields.zst"
	c.Output.Precision = 4

	return &c
}

// Load reads, defaults and validates the configuration at path.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	// Relative inputs resolve against the config file's directory.
	base := filepath.Dir(path)
	cfg.Input.Cost = resolve(base, cfg.Input.Cost)
	cfg.Input.Patches = resolve(base, cfg.Input.Patches)
	cfg.Output.Dir = resolve(base, cfg.Output.Dir)
	cfg.Store.Path = resolve(base, cfg.Store.Path)

	return cfg, nil
}

// Parse decodes YAML over Default and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (*RunConfig, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes as io.EOF and keeps the defaults.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value domains. The patch raster is the only required input.
func (c *RunConfig) Validate() error {
	switch {
	case c.Input.Patches == "":
		return fmt.Errorf("%w: input.patches is required", ErrInvalidConfig)
	case c.Input.Conn != 4 && c.Input.Conn != 8:
		return fmt.Errorf("%w: input.conn must be 4 or 8, got %d", ErrInvalidConfig, c.Input.Conn)
	case c.Input.CellSize < 0 || !finite(c.Input.CellSize):
		return fmt.Errorf("%w: input.cell_size must be ≥ 0, got %v", ErrInvalidConfig, c.Input.CellSize)
	case c.Extract.Workers < 0:
		return fmt.Errorf("%w: extract.workers must be ≥ 0, got %d", ErrInvalidConfig, c.Extract.Workers)
	case c.Extract.MaxCost < 0 || !finite(c.Extract.MaxCost):
		return fmt.Errorf("%w: extract.max_cost must be ≥ 0, got %v", ErrInvalidConfig, c.Extract.MaxCost)
	case !finite(c.Sweep.Min) || !finite(c.Sweep.Max) || c.Sweep.Min > c.Sweep.Max:
		return fmt.Errorf("%w: sweep range [%v,%v]", ErrInvalidConfig, c.Sweep.Min, c.Sweep.Max)
	case c.Sweep.Step <= 0 || !finite(c.Sweep.Step):
		return fmt.Errorf("%w: sweep.step must be > 0, got %v", ErrInvalidConfig, c.Sweep.Step)
	case c.Attributes.MaxDistance < 0 || !finite(c.Attributes.MaxDistance):
		return fmt.Errorf("%w: attributes.max_distance must be ≥ 0, got %v", ErrInvalidConfig, c.Attributes.MaxDistance)
	case c.Output.Precision < 0 || c.Output.Precision > 17:
		return fmt.Errorf("%w: output.precision must be in [0,17], got %d", ErrInvalidConfig, c.Output.Precision)
	}

	return nil
}

// OutputPath joins name onto the output directory; an empty name stays empty.
func (c *RunConfig) OutputPath(name string) string {
	if name == "" {
		return ""
	}

	return resolve(c.Output.Dir, name)
}

// EffectiveMaxCost maps the "0 disables" convention to +Inf.
func (c *RunConfig) EffectiveMaxCost() float64 {
	if c.Extract.MaxCost == 0 {
		return math.Inf(1)
	}

	return c.Extract.MaxCost
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
