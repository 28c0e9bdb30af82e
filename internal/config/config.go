// Package config loads ShapeBoard settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"ShapeBoard/internal/state"
)

type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Shapes ShapeConfig  `yaml:"shapes"`
	Export ExportConfig `yaml:"export"`
	Server ServerConfig `yaml:"server"`
}

type CanvasConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
}

// ShapeConfig holds the geometry new shapes are created with.
type ShapeConfig struct {
	Rect   RectConfig   `yaml:"rect"`
	Circle CircleConfig `yaml:"circle"`
	Line   LineConfig   `yaml:"line"`
}

type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CircleConfig struct {
	CX float64 `yaml:"cx"`
	CY float64 `yaml:"cy"`
	R  float64 `yaml:"r"`
}

type LineConfig struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}

type ExportConfig struct {
	Filename    string `yaml:"filename"`
	JPEGQuality int    `yaml:"jpeg_quality"`
	PDFFilename string `yaml:"pdf_filename"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	ServiceType string `yaml:"service_type"`
}

func Default() Config {
	return Config{
		Canvas: CanvasConfig{Width: 800, Height: 600, Color: "#000000", LineWidth: 2},
		Shapes: ShapeConfig{
			Rect:   RectConfig{X: 50, Y: 50, Width: 100, Height: 100},
			Circle: CircleConfig{CX: 150, CY: 150, R: 50},
			Line:   LineConfig{X1: 100, Y1: 100, X2: 200, Y2: 200},
		},
		Export: ExportConfig{Filename: "image.jpg", JPEGQuality: 90, PDFFilename: "board.pdf"},
		Server: ServerConfig{Addr: ":8888", ServiceType: "_shapeboard._tcp"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	for _, n := range c.numbers() {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite number, got %v", n.name, n.value))
		}
	}
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		errs = append(errs, errors.New("canvas size must not be negative"))
	}
	if c.Canvas.LineWidth <= 0 {
		errs = append(errs, errors.New("canvas.line_width must be positive"))
	}
	if hex, err := state.NormalizeColor(c.Canvas.Color); err != nil {
		errs = append(errs, fmt.Errorf("canvas.color: %w", err))
	} else {
		c.Canvas.Color = hex
	}
	if c.Shapes.Rect.Width <= 0 || c.Shapes.Rect.Height <= 0 {
		errs = append(errs, errors.New("shapes.rect size must be positive"))
	}
	if c.Shapes.Circle.R <= 0 {
		errs = append(errs, errors.New("shapes.circle.r must be positive"))
	}
	if c.Export.JPEGQuality < 1 || c.Export.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("export.jpeg_quality %d out of range 1..100", c.Export.JPEGQuality))
	}
	if c.Export.Filename == "" {
		errs = append(errs, errors.New("export.filename is empty"))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	return errors.Join(errs...)
}

type number struct {
	name  string
	value float64
}

// numbers lists every float field by its YAML path.
func (c *Config) numbers() []number {
	r, ci, l := c.Shapes.Rect, c.Shapes.Circle, c.Shapes.Line
	return []number{
		{"canvas.width", c.Canvas.Width},
		{"canvas.height", c.Canvas.Height},
		{"canvas.line_width", c.Canvas.LineWidth},
		{"shapes.rect.x", r.X},
		{"shapes.rect.y", r.Y},
		{"shapes.rect.width", r.Width},
		{"shapes.rect.height", r.Height},
		{"shapes.circle.cx", ci.CX},
		{"shapes.circle.cy", ci.CY},
		{"shapes.circle.r", ci.R},
		{"shapes.line.x1", l.X1},
		{"shapes.line.y1", l.Y1},
		{"shapes.line.x2", l.X2},
		{"shapes.line.y2", l.Y2},
	}
}
