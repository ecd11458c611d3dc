package cli

import (
	"fmt"

	"github.com/pablasso/linebar/internal/config"
	"github.com/pablasso/linebar/internal/progress"
	"github.com/pablasso/linebar/internal/tui"
	"github.com/spf13/pflag"
)

// indicatorFlags are the option flags shared by commands that build a bar.
// A config file is loaded first; flags given on the command line win.
type indicatorFlags struct {
	configPath string

	value         float64
	min           float64
	max           float64
	trackWidth    float64
	lineWidth     float64
	trackColor    string
	lineColor     string
	capStyle      string
	vertical      bool
	reverse       bool
	animate       bool
	animationTime int
}

func (f *indicatorFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Indicator options file (.toml, .yaml, .yml)")
	fs.Float64Var(&f.value, "value", 0, "Progress value")
	fs.Float64Var(&f.min, "min", 0, "Range minimum")
	fs.Float64Var(&f.max, "max", 100, "Range maximum")
	fs.Float64Var(&f.trackWidth, "track-width", 1, "Background line thickness in cells")
	fs.Float64Var(&f.lineWidth, "line-width", 1, "Progress line thickness in cells")
	fs.StringVar(&f.trackColor, "track-color", "", "Background line color (hex)")
	fs.StringVar(&f.lineColor, "line-color", "", "Progress line color (hex)")
	fs.StringVar(&f.capStyle, "cap", "round", "Line cap: round, square")
	fs.BoolVar(&f.vertical, "vertical", false, "Draw vertically")
	fs.BoolVar(&f.reverse, "reverse", false, "Fill from the far end")
	fs.BoolVar(&f.animate, "animate", true, "Animate value changes")
	fs.IntVar(&f.animationTime, "animation-ms", 0, "Animation duration in milliseconds")
}

// options merges the config file with the flags that were set explicitly.
func (f *indicatorFlags) options(fs *pflag.FlagSet) (progress.Options, error) {
	var opts progress.Options
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return progress.Options{}, err
		}
		opts = loaded
	}

	var err error
	fs.Visit(func(fl *pflag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "value":
			opts.Progress = &f.value
		case "min":
			opts.Min = &f.min
		case "max":
			opts.Max = &f.max
		case "track-width":
			opts.BackgroundLineWidth = &f.trackWidth
		case "line-width":
			opts.ProgressLineWidth = &f.lineWidth
		case "track-color":
			c, cerr := config.ParseColor(f.trackColor)
			if cerr != nil {
				err = fmt.Errorf("invalid --track-color: %w", cerr)
				return
			}
			opts.BackgroundLineColor = c
		case "line-color":
			c, cerr := config.ParseColor(f.lineColor)
			if cerr != nil {
				err = fmt.Errorf("invalid --line-color: %w", cerr)
				return
			}
			opts.ProgressLineColor = c
		case "cap":
			c, cerr := progress.ParseCapStyle(f.capStyle)
			if cerr != nil {
				err = fmt.Errorf("invalid --cap: %w", cerr)
				return
			}
			mode := 1
			if c == progress.CapSquare {
				mode = 2
			}
			opts.LineMode = &mode
		case "vertical":
			mode := 1
			if f.vertical {
				mode = 2
			}
			opts.Mode = &mode
		case "reverse":
			opts.Reverse = &f.reverse
		case "animate":
			opts.AnimateProgress = &f.animate
		case "animation-ms":
			opts.AnimationDuration = &f.animationTime
		}
	})
	if err != nil {
		return progress.Options{}, err
	}
	return opts, nil
}

// tuiFlags are the flags of commands that open the TUI.
type tuiFlags struct {
	indicatorFlags
	easing string
}

func (f *tuiFlags) register(fs *pflag.FlagSet) {
	f.indicatorFlags.register(fs)
	fs.StringVar(&f.easing, "easing", "linear", "Animation easing: linear, out-quad, in-out-cubic")
}

func (f *tuiFlags) tuiOptions(fs *pflag.FlagSet) (tui.Options, error) {
	opts, err := f.options(fs)
	if err != nil {
		return tui.Options{}, err
	}
	easing, err := progress.ParseEasing(f.easing)
	if err != nil {
		return tui.Options{}, fmt.Errorf("invalid --easing: %w", err)
	}
	return tui.Options{
		Indicator: opts,
		Easing:    easing,
		Logger:    &appLog,
	}, nil
}
