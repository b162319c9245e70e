package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Wave Spheres - drag: orbit, wheel: zoom, Space: auto-play, O: open scene, Esc/Q: quit"

	// Control panel
	PanelX       = 20
	PanelY       = 20
	CheckboxSize = 18
	SliderWidth  = 220
	SliderHeight = 6
	SliderGap    = 36
	KnobRadius   = 8

	TooltipOffset = 10
	FontSize      = 14

	TPS = 60

	// Visualization parameters
	PointCount   = 100
	PointSpacing = 0.2
	SphereRadius = 0.1
	AxisLength   = 10
	ShadeRings   = 6
)

// SceneConfig holds the tunables that can be loaded from a YAML scene file.
type SceneConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Points   PointsConfig   `yaml:"points"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Audio    AudioConfig    `yaml:"audio"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PointsConfig struct {
	Count   int     `yaml:"count"`
	Spacing float64 `yaml:"spacing"`
	Radius  float64 `yaml:"radius"`
}

type CameraConfig struct {
	FOV      float64 `yaml:"fov"`
	Distance float64 `yaml:"distance"`
}

type ControlsConfig struct {
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Frequency   float64 `yaml:"frequency"` // spring angular frequency
	Damping     float64 `yaml:"damping"`   // spring damping ratio, 1 = critical
}

type AudioConfig struct {
	HoverTone bool `yaml:"hover_tone"`
}

// Default returns the built-in scene.
func Default() *SceneConfig {
	c := &SceneConfig{}
	c.applyDefaults()
	return c
}

// Load reads a scene file. Fields left out of the file keep their defaults.
func Load(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML scene data.
func Parse(data []byte) (*SceneConfig, error) {
	var c SceneConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse scene file: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *SceneConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = WindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = WindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = WindowTitle
	}
	if c.Points.Count == 0 {
		c.Points.Count = PointCount
	}
	if c.Points.Spacing == 0 {
		c.Points.Spacing = PointSpacing
	}
	if c.Points.Radius == 0 {
		c.Points.Radius = SphereRadius
	}
	if c.Camera.FOV == 0 {
		c.Camera.FOV = 75
	}
	if c.Camera.Distance == 0 {
		c.Camera.Distance = 20
	}
	if c.Controls.MinDistance == 0 {
		c.Controls.MinDistance = 2
	}
	if c.Controls.MaxDistance == 0 {
		c.Controls.MaxDistance = 100
	}
	if c.Controls.Frequency == 0 {
		c.Controls.Frequency = 8
	}
	if c.Controls.Damping == 0 {
		c.Controls.Damping = 1
	}
}

var ErrInvalid = errors.New("invalid scene config")

// Validate rejects values the renderer cannot work with.
func (c *SceneConfig) Validate() error {
	switch {
	case c.Window.Width < 0 || c.Window.Height < 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Points.Count < 0:
		return fmt.Errorf("%w: points.count %d", ErrInvalid, c.Points.Count)
	case c.Points.Spacing < 0:
		return fmt.Errorf("%w: points.spacing %v", ErrInvalid, c.Points.Spacing)
	case c.Points.Radius < 0:
		return fmt.Errorf("%w: points.radius %v", ErrInvalid, c.Points.Radius)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov %v", ErrInvalid, c.Camera.FOV)
	case c.Camera.Distance < 0:
		return fmt.Errorf("%w: camera.distance %v", ErrInvalid, c.Camera.Distance)
	case c.Controls.MinDistance < 0 || c.Controls.MaxDistance < c.Controls.MinDistance:
		return fmt.Errorf("%w: controls distance range [%v, %v]", ErrInvalid, c.Controls.MinDistance, c.Controls.MaxDistance)
	case c.Camera.Distance < c.Controls.MinDistance || c.Camera.Distance > c.Controls.MaxDistance:
		return fmt.Errorf("%w: camera.distance %v outside [%v, %v]", ErrInvalid, c.Camera.Distance, c.Controls.MinDistance, c.Controls.MaxDistance)
	case c.Controls.Frequency < 0 || c.Controls.Damping < 0:
		return fmt.Errorf("%w: controls spring %v/%v", ErrInvalid, c.Controls.Frequency, c.Controls.Damping)
	}
	return nil
}
