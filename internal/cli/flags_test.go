package cli

import (
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pablasso/linebar/internal/progress"
	"github.com/pablasso/linebar/internal/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseIndicatorFlags(t *testing.T, args ...string) (progress.Options, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f indicatorFlags
	f.register(fs)
	require.NoError(t, fs.Parse(args))
	return f.options(fs)
}

func TestIndicatorFlags_UnsetFlagsStayNil(t *testing.T) {
	opts, err := parseIndicatorFlags(t)
	require.NoError(t, err)
	assert.Equal(t, progress.Options{}, opts)
}

func TestIndicatorFlags_SetFlags(t *testing.T) {
	opts, err := parseIndicatorFlags(t,
		"--value=40", "--min=10", "--max=50",
		"--line-width=2", "--track-width=3",
		"--cap=square", "--vertical", "--reverse",
		"--animate=false", "--animation-ms=250",
		"--line-color=#ff0000",
	)
	require.NoError(t, err)

	require.NotNil(t, opts.Progress)
	assert.Equal(t, 40.0, *opts.Progress)
	assert.Equal(t, 10.0, *opts.Min)
	assert.Equal(t, 50.0, *opts.Max)
	assert.Equal(t, 2.0, *opts.ProgressLineWidth)
	assert.Equal(t, 3.0, *opts.BackgroundLineWidth)
	assert.Equal(t, 2, *opts.LineMode)
	assert.Equal(t, 2, *opts.Mode)
	assert.True(t, *opts.Reverse)
	assert.False(t, *opts.AnimateProgress)
	assert.Equal(t, 250, *opts.AnimationDuration)

	red, ok := opts.ProgressLineColor.(colorful.Color)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", red.Hex())
	assert.Nil(t, opts.BackgroundLineColor)
}

func TestIndicatorFlags_HorizontalAndRoundMapToOne(t *testing.T) {
	opts, err := parseIndicatorFlags(t, "--vertical=false", "--cap=round")
	require.NoError(t, err)
	assert.Equal(t, 1, *opts.Mode)
	assert.Equal(t, 1, *opts.LineMode)
}

func TestIndicatorFlags_Errors(t *testing.T) {
	_, err := parseIndicatorFlags(t, "--cap=triangle")
	assert.ErrorContains(t, err, "--cap")

	_, err = parseIndicatorFlags(t, "--track-color=nope")
	assert.ErrorContains(t, err, "--track-color")

	_, err = parseIndicatorFlags(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestIndicatorFlags_FlagsOverrideConfig(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "bar.toml", "progress = 20.0\nlineMode = 2\nreverse = true\n")

	opts, err := parseIndicatorFlags(t, "--config", path, "--value=80")
	require.NoError(t, err)

	assert.Equal(t, 80.0, *opts.Progress)
	assert.Equal(t, 2, *opts.LineMode)
	assert.True(t, *opts.Reverse)
}

func TestTUIFlags_Easing(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f tuiFlags
	f.register(fs)
	require.NoError(t, fs.Parse([]string{"--easing=out-quad", "--value=5"}))

	opts, err := f.tuiOptions(fs)
	require.NoError(t, err)
	require.NotNil(t, opts.Easing)
	assert.InDelta(t, 0.75, opts.Easing(0.5), 1e-12)
	assert.Equal(t, 5.0, *opts.Indicator.Progress)
	assert.NotNil(t, opts.Logger)

	f.easing = "bounce"
	_, err = f.tuiOptions(fs)
	assert.ErrorContains(t, err, "--easing")
}
