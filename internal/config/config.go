// File: internal/config/config.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the immutable process configuration. It is built once in main and
// handed to the layout, board and ui packages.
type Config struct {
	Title    string  `yaml:"title"`
	Window   Window  `yaml:"window"`
	Grid     Grid    `yaml:"grid"`
	Pieces   Pieces  `yaml:"pieces"`
	Style    Style   `yaml:"style"`
	Colors   Palette `yaml:"colors"`
	TPS      int     `yaml:"tps"`
	LogLevel string  `yaml:"log_level"`
	Language string  `yaml:"language"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Grid describes the board in tile units. The tile length is derived from the
// window size divided by Columns and Rows.
type Grid struct {
	Columns    int `yaml:"columns"`
	Rows       int `yaml:"rows"`
	LeftOffset int `yaml:"left_offset"`
	Dice       int `yaml:"dice"`
}

type Pieces struct {
	PerPlayer      int `yaml:"per_player"`
	Radius         int `yaml:"radius"`
	ReserveSpacing int `yaml:"reserve_spacing"`
}

type Style struct {
	TileBorder     int `yaml:"tile_border"`
	TriangleBorder int `yaml:"triangle_border"`
	PipRadius      int `yaml:"pip_radius"`
	LabelScale     int `yaml:"label_scale"`
}

type Palette struct {
	Background  Color `yaml:"background"`
	Tile        Color `yaml:"tile"`
	Safe        Color `yaml:"safe"`
	Top         Color `yaml:"top"`
	Bottom      Color `yaml:"bottom"`
	PipMarked   Color `yaml:"pip_marked"`
	PipBlank    Color `yaml:"pip_blank"`
	RolledLabel Color `yaml:"rolled_label"`
	RollLabel   Color `yaml:"roll_label"`
}

// Color is an opaque RGB colour written as "#rrggbb" in YAML.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	rgba, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.RGBA = rgba
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// ParseColor reads "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Default returns the embedded configuration.
func Default() Config {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return c
}

// Load overlays the YAML file at path on top of Default. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, c.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

var ErrInvalid = errors.New("invalid config")

func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, name, v))
		}
	}
	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)
	positive("grid.columns", c.Grid.Columns)
	positive("grid.rows", c.Grid.Rows)
	positive("grid.dice", c.Grid.Dice)
	positive("pieces.per_player", c.Pieces.PerPlayer)
	positive("pieces.radius", c.Pieces.Radius)
	positive("style.label_scale", c.Style.LabelScale)
	positive("tps", c.TPS)
	if c.Grid.LeftOffset < 0 {
		errs = append(errs, fmt.Errorf("%w: grid.left_offset must not be negative", ErrInvalid))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: log_level: %v", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Level is the parsed LogLevel; Validate guarantees it parses.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
