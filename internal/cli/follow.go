package cli

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/pablasso/linebar/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var followFlags tuiFlags

var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Launch the TUI and move the bars to each number read from stdin",
	Long: heredoc.Doc(`
		Read one number per line from standard input and animate every bar
		to it. Lines that are not numbers are skipped. Values outside the
		range are clamped to it.
	`),
	Example: heredoc.Doc(`
		seq 0 10 100 | linebar follow
	`),
	RunE: runFollow,
}

func init() {
	followFlags.register(followCmd.Flags())
}

func runFollow(cmd *cobra.Command, args []string) error {
	opts, err := followFlags.tuiOptions(cmd.Flags())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	opts.Targets = readTargets(ctx, cmd.InOrStdin(), appLog)
	return tui.Run(opts)
}

// readTargets parses one value per line from r. The channel is closed at
// EOF or when ctx is done.
func readTargets(ctx context.Context, r io.Reader, log zerolog.Logger) <-chan float64 {
	out := make(chan float64)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			v, err := strconv.ParseFloat(line, 64)
			if err != nil {
				log.Debug().Str("line", line).Msg("skipping non-numeric input")
				continue
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Warn().Err(err).Msg("reading targets failed")
		}
	}()
	return out
}
