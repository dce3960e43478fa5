// Package config loads the goslice settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/hull"
	"github.com/philipparndt/goslice/pkg/material"
	"github.com/philipparndt/goslice/pkg/slicing"
	"github.com/philipparndt/goslice/pkg/source"
	"github.com/philipparndt/goslice/pkg/uvmap"
)

// FileName is the name of the config file inside the user config dir
const FileName = "config.toml"

// Config holds all settings
type Config struct {
	Slicer   Slicer   `toml:"slicer"`
	UV       UV       `toml:"uv"`
	Plane    Plane    `toml:"plane"`
	Source   Source   `toml:"source"`
	Material Material `toml:"material"`
}

// Slicer configures clipping and hull reconstruction
type Slicer struct {
	Tolerance     float64 `toml:"tolerance" comment:"half-width of the on-plane band"`
	OnPlane       string  `toml:"on_plane" comment:"both, front or front-duplicate-back"`
	HullTolerance float64 `toml:"hull_tolerance" comment:"points closer than this are merged"`
}

// UV configures face classification, in degrees
type UV struct {
	HorizontalThreshold float64 `toml:"horizontal_threshold"`
	AlignedThreshold    float64 `toml:"aligned_threshold"`
}

// Plane is the default cut plane in world space
type Plane struct {
	Position [3]float64 `toml:"position"`
	Normal   [3]float64 `toml:"normal"`
}

// Source configures the generated box and where the mesh sits in the world
type Source struct {
	Box    [3]float64 `toml:"box" comment:"width, height, length of the generated box"`
	Origin [3]float64 `toml:"origin"`
	Center bool       `toml:"center" comment:"center loaded files on their bounding box"`
}

// Material selects the material used for UV projection
type Material struct {
	ID   string `toml:"id"`
	File string `toml:"file,omitempty" comment:"TOML or YAML material index; built-ins when empty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Slicer: Slicer{
			Tolerance:     geometry.DefaultTolerance,
			OnPlane:       slicing.OnPlaneBoth.String(),
			HullTolerance: hull.DefaultTolerance,
		},
		UV: UV{
			HorizontalThreshold: uvmap.DefaultHorizontalThreshold,
			AlignedThreshold:    uvmap.DefaultAlignedThreshold,
		},
		Plane: Plane{
			Normal: [3]float64{1, 0, 0},
		},
		Source: Source{
			Box: [3]float64{1, 2, 1},
		},
		Material: Material{
			ID: string(material.Wood),
		},
	}
}

// DefaultPath returns the config file location in the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "goslice", FileName)
}

// Load reads the config at path. A missing file yields the defaults;
// settings absent from the file keep their default values. A leading ~ is
// expanded to the home directory.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating its directory
func (c *Config) Save(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks values that would only fail later in the pipeline
func (c *Config) Validate() error {
	if _, err := slicing.ParsePolicy(c.Slicer.OnPlane); err != nil {
		return err
	}
	if c.Slicer.Tolerance < 0 || c.Slicer.HullTolerance < 0 {
		return fmt.Errorf("tolerances must not be negative")
	}
	if err := c.CutPlane().Validate(); err != nil {
		return err
	}
	return nil
}

// Clipper returns the configured clipper
func (c *Config) Clipper() (slicing.Clipper, error) {
	policy, err := slicing.ParsePolicy(c.Slicer.OnPlane)
	if err != nil {
		return slicing.Clipper{}, err
	}
	return slicing.NewClipper(c.Slicer.Tolerance, policy), nil
}

// Projector returns the configured UV projector
func (c *Config) Projector() uvmap.Projector {
	return uvmap.Projector{
		HorizontalThreshold: c.UV.HorizontalThreshold,
		AlignedThreshold:    c.UV.AlignedThreshold,
	}
}

// CutPlane returns the configured plane
func (c *Config) CutPlane() geometry.Plane {
	return geometry.NewPlane(vec(c.Plane.Position), vec(c.Plane.Normal))
}

// Origin returns the world position of the mesh origin
func (c *Config) Origin() geometry.Vector3 {
	return vec(c.Source.Origin)
}

// BoxGenerator returns the generator for the configured box
func (c *Config) BoxGenerator() source.BoxGenerator {
	return source.BoxGenerator{Width: c.Source.Box[0], Height: c.Source.Box[1], Length: c.Source.Box[2]}
}

// Materials loads the configured material index
func (c *Config) Materials() (*material.Index, error) {
	if c.Material.File == "" {
		return material.Default(), nil
	}
	path, err := homedir.Expand(c.Material.File)
	if err != nil {
		return nil, err
	}
	return material.LoadFile(path)
}

func vec(a [3]float64) geometry.Vector3 {
	return geometry.NewVector3(a[0], a[1], a[2])
}
