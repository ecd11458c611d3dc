package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pablasso/linebar/internal/logger"
	"github.com/pablasso/linebar/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logDir   string

	appLog = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "linebar",
	Short: "Line progress indicator for the terminal",
	Long: heredoc.Doc(`
		Linebar draws a line progress indicator in the terminal.

		A value in a min/max range is mapped onto a background track and a
		filled foreground line, horizontal or vertical, optionally reversed,
		with round or square caps. Value changes animate over time.

		Run without arguments to open the interactive view.
	`),
	Version:      version.String(),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		appLog = logger.New(logger.Config{Dir: logDir, Level: logLevel})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"Directory for the log file (default: user cache directory)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(geometryCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(followCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
