package demo

import (
	"fmt"
	"strings"
	"time"
)

// Preset controls how often demo playback picks a new target and how long
// each transition takes.
type Preset string

const (
	PresetQuick  Preset = "quick"
	PresetNormal Preset = "normal"
	PresetSlow   Preset = "slow"
)

// ParsePreset validates and normalizes a preset value.
func ParsePreset(value string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(value))) {
	case PresetQuick, PresetNormal, PresetSlow:
		return Preset(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo preset %q (valid: quick, normal, slow)", value)
	}
}

// Config controls demo playback.
type Config struct {
	Preset Preset
	// Interval between new targets.
	Interval time.Duration
	// Animation is the transition length applied to the indicators.
	Animation time.Duration
	// Seed makes the target sequence reproducible. Zero picks a random seed.
	Seed uint64
}

// NewConfig returns the playback settings for a preset.
func NewConfig(preset Preset) (Config, error) {
	switch preset {
	case PresetQuick:
		return Config{Preset: preset, Interval: 800 * time.Millisecond, Animation: 300 * time.Millisecond}, nil
	case PresetNormal:
		return Config{Preset: preset, Interval: 2 * time.Second, Animation: 600 * time.Millisecond}, nil
	case PresetSlow:
		return Config{Preset: preset, Interval: 5 * time.Second, Animation: 1500 * time.Millisecond}, nil
	default:
		return Config{}, fmt.Errorf("unknown demo preset %q", preset)
	}
}
