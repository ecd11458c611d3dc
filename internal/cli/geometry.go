package cli

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/pablasso/linebar/internal/progress"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	geometryFlags  indicatorFlags
	geometryWidth  float64
	geometryHeight float64
	geometryInsets []float64
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Print the resolved line segments",
	Long: heredoc.Doc(`
		Resolve the background and foreground segments for an area and
		print them as a table.

		Insets are given as top,bottom,start,end.
	`),
	Example: heredoc.Doc(`
		linebar geometry --width 200 --height 20 --line-width 10 --track-width 10 --value 50
		linebar geometry --width 20 --height 200 --vertical --reverse --value 25
	`),
	RunE: runGeometry,
}

func init() {
	geometryFlags.register(geometryCmd.Flags())
	geometryCmd.Flags().Float64Var(&geometryWidth, "width", 200, "Area width")
	geometryCmd.Flags().Float64Var(&geometryHeight, "height", 20, "Area height")
	geometryCmd.Flags().Float64SliceVar(&geometryInsets, "insets", []float64{0, 0, 0, 0}, "Insets: top,bottom,start,end")
}

func runGeometry(cmd *cobra.Command, args []string) error {
	opts, err := geometryFlags.options(cmd.Flags())
	if err != nil {
		return err
	}
	insets, err := parseInsets(geometryInsets)
	if err != nil {
		return err
	}
	r := progress.Rect{Width: geometryWidth, Height: geometryHeight, Insets: insets}
	return printGeometry(cmd.OutOrStdout(), newStaticBar(opts), r)
}

func parseInsets(values []float64) (progress.Insets, error) {
	if len(values) != 4 {
		return progress.Insets{}, fmt.Errorf("--insets needs 4 values (top,bottom,start,end), got %d", len(values))
	}
	return progress.Insets{Top: values[0], Bottom: values[1], Start: values[2], End: values[3]}, nil
}

func geometryTable(bar *progress.Dual, r progress.Rect) pterm.TableData {
	bg, fg := bar.Segments(r)
	style := bar.Style()
	row := func(name string, seg progress.Segment, thickness float64) []string {
		return []string{
			name,
			formatFloat(seg.X1), formatFloat(seg.Y1),
			formatFloat(seg.X2), formatFloat(seg.Y2),
			formatFloat(seg.Length()),
			formatFloat(thickness),
		}
	}
	return pterm.TableData{
		{"Segment", "X1", "Y1", "X2", "Y2", "Length", "Thickness"},
		row("background", bg, style.BackgroundThickness),
		row("foreground", fg, style.ProgressThickness),
	}
}

func printGeometry(w io.Writer, bar *progress.Dual, r progress.Rect) error {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithData(geometryTable(bar, r)).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n%s %s, %s caps, %.1f%%\n",
		table, bar.Orientation(), reversedLabel(bar.Reverse()), bar.LineMode(), bar.Percent())
	return err
}

func reversedLabel(reverse bool) string {
	if reverse {
		return "reversed"
	}
	return "forward"
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
