package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPath_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	got := Path(dir)

	if got != filepath.Join(dir, fileName) {
		t.Errorf("Path() = %q", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected directory to exist: %v", err)
	}
}

func TestNew_WritesFileAndConsole(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	log := New(Config{Dir: dir, Level: "debug", Console: &console})
	log.Debug().Str("option", "progress").Msg("rejected")
	log.Trace().Msg("hidden")

	if !strings.Contains(console.String(), "rejected") {
		t.Errorf("expected console output, got: %q", console.String())
	}
	if strings.Contains(console.String(), "hidden") {
		t.Errorf("trace should be filtered at debug level, got: %q", console.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "option=progress") {
		t.Errorf("expected structured field in file, got: %q", string(data))
	}
}
