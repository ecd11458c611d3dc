package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/pablasso/linebar/internal/config"
	"github.com/pablasso/linebar/internal/tui"
	"github.com/spf13/cobra"
)

const watchDebounce = 150 * time.Millisecond

var watchFlags tuiFlags

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Launch the TUI and reload options when the config file changes",
	Long: heredoc.Doc(`
		Launch the TUI with options from --config and apply the file again
		every time it is saved. A file that fails to parse leaves the bars
		as they were and shows the error in the status area.
	`),
	Example: heredoc.Doc(`
		linebar watch --config linebar.toml
	`),
	RunE: runWatch,
}

func init() {
	watchFlags.register(watchCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchFlags.configPath == "" {
		return errors.New("--config is required")
	}

	opts, err := watchFlags.tuiOptions(cmd.Flags())
	if err != nil {
		return err
	}

	w, err := config.NewWatcher(watchFlags.configPath, watchDebounce, appLog)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchFlags.configPath, err)
	}

	appLog.Info().Str("path", w.Path()).Msg("watching config")
	opts.Watcher = w
	return tui.Run(opts)
}
