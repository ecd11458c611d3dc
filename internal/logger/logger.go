// Package logger builds the zerolog logger used across linebar.
//
// The TUI owns the terminal, so logs go to a rotated file by default and
// only reach the console when a console writer is given.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const fileName = "linebar.log"

// Config controls where and how much is logged.
type Config struct {
	// Dir holds the log file. Empty means the user cache directory.
	Dir string
	// Level is one of trace, debug, info, warn, error. Default info.
	Level string
	// Console, if set, also receives human readable output.
	Console io.Writer
}

// Path returns the log file location for dir.
func Path(dir string) string {
	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return filepath.Join(os.TempDir(), fileName)
		}
		dir = filepath.Join(cache, "linebar")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return filepath.Join(os.TempDir(), fileName)
	}
	return filepath.Join(dir, fileName)
}

// ParseLevel maps a level name to a zerolog level. Unknown names give info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a logger writing to a rotated file and optionally the console.
func New(cfg Config) zerolog.Logger {
	rotating := &lumberjack.Logger{
		Filename: Path(cfg.Dir),
		MaxSize:  10,
		MaxAge:   15,
		Compress: true,
	}

	fileWriter := zerolog.ConsoleWriter{
		Out:        rotating,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
	}

	var out io.Writer = fileWriter
	if cfg.Console != nil {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        cfg.Console,
			TimeFormat: "15:04:05",
			FormatLevel: func(i interface{}) string {
				level := strings.ToUpper(fmt.Sprintf("%s", i))
				if len(level) > 3 {
					level = level[:3]
				}
				return fmt.Sprintf("[%s]", level)
			},
		}
		out = zerolog.MultiLevelWriter(consoleWriter, fileWriter)
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(cfg.Level))
}
