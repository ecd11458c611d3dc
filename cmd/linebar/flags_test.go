package main

import (
	"strings"
	"testing"

	"github.com/pablasso/linebar/internal/demo"
)

func TestParseArgs_NoArgs(t *testing.T) {
	res, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.ShowHelp {
		t.Fatalf("expected ShowHelp=false")
	}
	if res.ShowVersion {
		t.Fatalf("expected ShowVersion=false")
	}
	if res.Demo != nil {
		t.Fatalf("expected demo disabled")
	}
	if res.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", res.LogLevel)
	}
}

func TestParseArgs_DemoDefaults(t *testing.T) {
	res, err := parseArgs([]string{"--demo"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Demo == nil {
		t.Fatalf("expected demo enabled")
	}
	if res.Demo.Preset != demo.PresetNormal {
		t.Fatalf("expected preset %q, got %q", demo.PresetNormal, res.Demo.Preset)
	}
	if res.Demo.Seed != 0 {
		t.Fatalf("expected seed 0, got %d", res.Demo.Seed)
	}
}

func TestParseArgs_DemoWithPresetAndSeed(t *testing.T) {
	res, err := parseArgs([]string{"--demo", "--demo-preset=quick", "--demo-seed=7"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Demo == nil {
		t.Fatalf("expected demo enabled")
	}
	if res.Demo.Preset != demo.PresetQuick {
		t.Fatalf("expected preset %q, got %q", demo.PresetQuick, res.Demo.Preset)
	}
	if res.Demo.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", res.Demo.Seed)
	}
}

func TestParseArgs_ConfigPath(t *testing.T) {
	res, err := parseArgs([]string{"--config", "bar.toml", "--log-level=debug"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.ConfigPath != "bar.toml" {
		t.Fatalf("expected config path bar.toml, got %q", res.ConfigPath)
	}
	if res.LogLevel != "debug" {
		t.Fatalf("expected log level debug, got %q", res.LogLevel)
	}
}

func TestParseArgs_DemoFlagsWithoutDemoErrors(t *testing.T) {
	for _, arg := range []string{"--demo-preset=quick", "--demo-seed=3"} {
		_, err := parseArgs([]string{arg})
		if err == nil {
			t.Fatalf("expected error for %s", arg)
		}
		if !strings.Contains(err.Error(), "require --demo") {
			t.Fatalf("expected error to mention require --demo, got: %s", err.Error())
		}
	}
}

func TestParseArgs_InvalidPresetErrors(t *testing.T) {
	_, err := parseArgs([]string{"--demo", "--demo-preset=nope"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid demo preset") {
		t.Fatalf("expected invalid preset error, got: %s", err.Error())
	}
}

func TestParseArgs_PositionalArgsError(t *testing.T) {
	_, err := parseArgs([]string{"--demo", "foo"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "positional args are not supported") {
		t.Fatalf("expected positional args error, got: %s", err.Error())
	}
}

func TestParseArgs_VersionLong(t *testing.T) {
	res, err := parseArgs([]string{"--version"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowVersion {
		t.Fatalf("expected ShowVersion=true")
	}
	if res.ShowHelp {
		t.Fatalf("expected ShowHelp=false")
	}
}

func TestParseArgs_VersionShort(t *testing.T) {
	res, err := parseArgs([]string{"-v"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowVersion {
		t.Fatalf("expected ShowVersion=true")
	}
}

func TestParseArgs_Help(t *testing.T) {
	res, err := parseArgs([]string{"--help"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowHelp {
		t.Fatalf("expected ShowHelp=true")
	}
	if !strings.Contains(res.HelpText, "Linebar draws a line progress indicator in the terminal.") {
		t.Fatalf("expected help text to include summary line, got: %s", res.HelpText)
	}
	if !strings.Contains(res.HelpText, "-demo") {
		t.Fatalf("expected help text to include demo flags, got: %s", res.HelpText)
	}
	if !strings.Contains(res.HelpText, "-version") {
		t.Fatalf("expected help text to include version flags, got: %s", res.HelpText)
	}
}
