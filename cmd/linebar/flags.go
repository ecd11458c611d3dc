package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/linebar/internal/demo"
)

type parseResult struct {
	Demo        *demo.Config
	ConfigPath  string
	LogLevel    string
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("linebar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	demoEnabled := fs.Bool("demo", false, "Start demo playback")
	demoPreset := fs.String("demo-preset", string(demo.PresetNormal), "Demo preset: quick|normal|slow")
	demoSeed := fs.Uint64("demo-seed", 0, "Seed for demo targets (0 picks a random seed)")
	configPath := fs.String("config", "", "Indicator options file, reloaded on save")
	logLevel := fs.String("log-level", "info", "Log level: trace|debug|info|warn|error")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: linebar [flags]")
		fmt.Fprintln(&b, "       linebar <command> [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Linebar draws a line progress indicator in the terminal.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Commands: demo, render, geometry, watch, follow (see linebar help)")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	var presetProvided, seedProvided bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "demo-preset":
			presetProvided = true
		case "demo-seed":
			seedProvided = true
		}
	})

	if !*demoEnabled && (presetProvided || seedProvided) {
		return parseResult{}, fmt.Errorf("--demo-preset/--demo-seed require --demo\n\n%s", usage())
	}

	res := parseResult{ConfigPath: *configPath, LogLevel: *logLevel}
	if !*demoEnabled {
		return res, nil
	}

	preset, err := demo.ParsePreset(*demoPreset)
	if err != nil {
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}
	cfg, err := demo.NewConfig(preset)
	if err != nil {
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}
	cfg.Seed = *demoSeed
	res.Demo = &cfg

	return res, nil
}
