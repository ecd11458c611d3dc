package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pablasso/linebar/internal/demo"
	"github.com/pablasso/linebar/internal/tui"
	"github.com/spf13/cobra"
)

var (
	demoFlags  tuiFlags
	demoPreset string
	demoSeed   uint64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the TUI with bars moving to random targets",
	Long: heredoc.Doc(`
		Launch the TUI with demo playback. A new random target is picked on
		a timer and every bar animates to it.

		Presets:
		  quick    new target every 800ms, 300ms transitions
		  normal   new target every 2s, 600ms transitions (default)
		  slow     new target every 5s, 1.5s transitions
	`),
	RunE: runDemo,
}

func init() {
	demoFlags.register(demoCmd.Flags())
	demoCmd.Flags().StringVar(&demoPreset, "preset", string(demo.PresetNormal),
		"Demo preset: quick, normal, slow")
	demoCmd.Flags().Uint64Var(&demoSeed, "seed", 0,
		"Seed for the target sequence (0 picks a random seed)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	preset, err := demo.ParsePreset(demoPreset)
	if err != nil {
		return err
	}
	cfg, err := demo.NewConfig(preset)
	if err != nil {
		return err
	}
	cfg.Seed = demoSeed

	opts, err := demoFlags.tuiOptions(cmd.Flags())
	if err != nil {
		return err
	}
	opts.Demo = &cfg

	appLog.Info().Str("preset", string(preset)).Uint64("seed", demoSeed).Msg("starting demo")
	return tui.Run(opts)
}
