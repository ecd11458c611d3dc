package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/pablasso/linebar/internal/progress"
	"github.com/pablasso/linebar/internal/tui/components"
	"github.com/pablasso/linebar/internal/tui/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 60
	fallbackHeight = 20
)

var (
	renderFlags  indicatorFlags
	renderWidth  int
	renderHeight int
	renderMask   bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single frame of the indicator",
	Long: heredoc.Doc(`
		Print one frame of the indicator at the given value.

		Width and height default to the terminal size. A horizontal bar
		takes only the rows its thickness needs; a vertical bar takes only
		the columns. Options from --config are applied first and flags
		override them.
	`),
	Example: heredoc.Doc(`
		linebar render --value 40
		linebar render --value 75 --vertical --height 10 --line-width 2
		linebar render --value 30 --reverse --cap square --mask
	`),
	RunE: runRender,
}

func init() {
	renderFlags.register(renderCmd.Flags())
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Frame width in cells (default: terminal width)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Frame height in cells (default: terminal height)")
	renderCmd.Flags().BoolVar(&renderMask, "mask", false, "Print painted cells as # without color")
}

func runRender(cmd *cobra.Command, args []string) error {
	opts, err := renderFlags.options(cmd.Flags())
	if err != nil {
		return err
	}
	width, height := frameSize(renderWidth, renderHeight)
	return renderFrame(cmd.OutOrStdout(), opts, width, height, renderMask)
}

// frameSize fills unset dimensions from the terminal.
func frameSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || tw <= 0 || th <= 0 {
		tw, th = fallbackWidth, fallbackHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = max(th-1, 1)
	}
	return width, height
}

// newStaticBar builds a bar with the default look that applies values
// immediately.
func newStaticBar(opts progress.Options) *progress.Dual {
	bar := progress.NewDual(progress.WithDiagnostics(appLog))
	bar.SetBackgroundLineWidth(1)
	bar.SetProgressLineWidth(1)
	bar.SetBackgroundLineColor(styles.TrackColor)
	bar.SetProgressLineColor(styles.FillColor)
	bar.SetAnimateProgress(false)
	bar.Apply(opts)
	return bar
}

func renderFrame(w io.Writer, opts progress.Options, width, height int, mask bool) error {
	gauge := components.NewGauge(newStaticBar(opts), progress.Insets{})
	if mask {
		_, err := fmt.Fprintln(w, strings.Join(gauge.Mask(width, height), "\n"))
		return err
	}
	_, err := fmt.Fprintln(w, gauge.View(width, height))
	return err
}
