package demo

import (
	"testing"
	"time"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Preset
		wantErr bool
	}{
		{name: "quick", in: "quick", want: PresetQuick},
		{name: "normal", in: "normal", want: PresetNormal},
		{name: "slow", in: "slow", want: PresetSlow},
		{name: "trim and lowercase", in: "  SLOW  ", want: PresetSlow},
		{name: "invalid", in: "medium", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePreset() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParsePreset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	var prev time.Duration
	for _, p := range []Preset{PresetQuick, PresetNormal, PresetSlow} {
		cfg, err := NewConfig(p)
		if err != nil {
			t.Fatalf("NewConfig(%q) error = %v", p, err)
		}
		if cfg.Animation >= cfg.Interval {
			t.Errorf("%s: animation %v should finish before the next target at %v", p, cfg.Animation, cfg.Interval)
		}
		if cfg.Interval <= prev {
			t.Errorf("%s: interval %v should be slower than %v", p, cfg.Interval, prev)
		}
		prev = cfg.Interval
	}

	if _, err := NewConfig("bogus"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestTargets_Next(t *testing.T) {
	targets := NewTargets(42)

	for i := 0; i < 500; i++ {
		v := targets.Next(0, 100)
		if v < 0 || v >= 100 || v != float64(int(v)) {
			t.Fatalf("Next(0, 100) = %v, want a whole number in [0, 100)", v)
		}
	}
	for i := 0; i < 100; i++ {
		v := targets.Next(-20, -10)
		if v < -20 || v >= -10 {
			t.Fatalf("Next(-20, -10) = %v", v)
		}
	}
}

func TestTargets_Reproducible(t *testing.T) {
	a, b := NewTargets(7), NewTargets(7)
	for i := 0; i < 20; i++ {
		if x, y := a.Next(0, 100), b.Next(0, 100); x != y {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, x, y)
		}
	}
}

func TestTargets_NarrowRange(t *testing.T) {
	targets := NewTargets(1)
	if v := targets.Next(3, 3.5); v != 3 {
		t.Errorf("Next(3, 3.5) = %v, want 3", v)
	}
}
