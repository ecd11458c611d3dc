// Package config loads indicator options from TOML or YAML files.
//
// Files hold the flat option set of an indicator:
//
//	backgroundLineWidth = 1
//	progressLineWidth = 1
//	backgroundLineColor = "#333333"
//	progressLineColor = "#5FAFAF"
//	min = 0
//	max = 100
//	progress = 40
//	lineMode = 2          # 0/1 round, 2 square
//	animateProgress = true
//	animationDuration = 600 # milliseconds
//	mode = 1              # 0/1 horizontal, 2 vertical
//	reverse = false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pablasso/linebar/internal/progress"
	"gopkg.in/yaml.v3"
)

// Format is an option file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported config file %q (valid: .toml, .yaml, .yml)", path)
	}
}

// File mirrors the on-disk option set. Absent keys stay nil.
type File struct {
	BackgroundLineWidth *float64 `toml:"backgroundLineWidth" yaml:"backgroundLineWidth"`
	ProgressLineWidth   *float64 `toml:"progressLineWidth" yaml:"progressLineWidth"`
	BackgroundLineColor string   `toml:"backgroundLineColor" yaml:"backgroundLineColor"`
	ProgressLineColor   string   `toml:"progressLineColor" yaml:"progressLineColor"`
	Min                 *float64 `toml:"min" yaml:"min"`
	Max                 *float64 `toml:"max" yaml:"max"`
	Progress            *float64 `toml:"progress" yaml:"progress"`
	LineMode            *int     `toml:"lineMode" yaml:"lineMode"`
	AnimateProgress     *bool    `toml:"animateProgress" yaml:"animateProgress"`
	AnimationDuration   *int     `toml:"animationDuration" yaml:"animationDuration"`
	Mode                *int     `toml:"mode" yaml:"mode"`
	Reverse             *bool    `toml:"reverse" yaml:"reverse"`
}

// Load reads and decodes the option file at path.
func Load(path string) (progress.Options, error) {
	format, err := FormatFor(path)
	if err != nil {
		return progress.Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return progress.Options{}, fmt.Errorf("failed to read config: %w", err)
	}
	opts, err := Parse(data, format)
	if err != nil {
		return progress.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes option data in the given format.
func Parse(data []byte, format Format) (progress.Options, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return progress.Options{}, fmt.Errorf("failed to decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return progress.Options{}, fmt.Errorf("unknown option %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return progress.Options{}, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return progress.Options{}, fmt.Errorf("unknown config format %q", format)
	}
	return f.Options()
}

// Options converts the file into indicator options, parsing colors.
func (f File) Options() (progress.Options, error) {
	opts := progress.Options{
		BackgroundLineWidth: f.BackgroundLineWidth,
		ProgressLineWidth:   f.ProgressLineWidth,
		Min:                 f.Min,
		Max:                 f.Max,
		Progress:            f.Progress,
		LineMode:            f.LineMode,
		AnimateProgress:     f.AnimateProgress,
		AnimationDuration:   f.AnimationDuration,
		Mode:                f.Mode,
		Reverse:             f.Reverse,
	}

	if f.BackgroundLineColor != "" {
		c, err := ParseColor(f.BackgroundLineColor)
		if err != nil {
			return progress.Options{}, fmt.Errorf("backgroundLineColor: %w", err)
		}
		opts.BackgroundLineColor = c
	}
	if f.ProgressLineColor != "" {
		c, err := ParseColor(f.ProgressLineColor)
		if err != nil {
			return progress.Options{}, fmt.Errorf("progressLineColor: %w", err)
		}
		opts.ProgressLineColor = c
	}
	return opts, nil
}

// ParseColor accepts "#RRGGBB" or "RRGGBB".
func ParseColor(value string) (colorful.Color, error) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q", value)
	}
	return c, nil
}
