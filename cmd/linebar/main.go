package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pablasso/linebar/internal/cli"
	"github.com/pablasso/linebar/internal/config"
	"github.com/pablasso/linebar/internal/logger"
	"github.com/pablasso/linebar/internal/tui"
	"github.com/pablasso/linebar/internal/version"
)

func main() {
	// No args or only flags launch the TUI; a command routes to the CLI
	if len(os.Args) == 1 || strings.HasPrefix(os.Args[1], "-") {
		if err := runTUI(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(args []string) error {
	res, err := parseArgs(args)
	if err != nil {
		return err
	}
	if res.ShowHelp {
		fmt.Print(res.HelpText)
		return nil
	}
	if res.ShowVersion {
		fmt.Println("linebar " + version.String())
		return nil
	}

	log := logger.New(logger.Config{Level: res.LogLevel})
	opts := tui.Options{Demo: res.Demo, Logger: &log}

	if res.ConfigPath != "" {
		indicator, err := config.Load(res.ConfigPath)
		if err != nil {
			return err
		}
		w, err := config.NewWatcher(res.ConfigPath, 150*time.Millisecond, log)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", res.ConfigPath, err)
		}
		opts.Indicator = indicator
		opts.Watcher = w
	}

	return tui.Run(opts)
}
