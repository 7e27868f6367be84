package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/sx/internal/demo"
	"github.com/katalvlaran/sx/logging"
)

func validViper() map[string]any {
	return map[string]any{
		cfgLogLevel:    "debug",
		cfgLogFormat:   "json",
		cfgPiSamples:   1000,
		cfgPiWorkers:   2,
		cfgPiBudget:    1,
		cfgPiSeed:      9,
		cfgLoremBudget: 100,
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	v := newViper()
	for k, val := range validViper() {
		v.Set(k, val)
	}

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	require.Equal(t, logging.LevelDebug, cfg.LogLevel)
	require.Equal(t, logging.FmtJSON, cfg.LogFormat)
	require.Equal(t, 1000, cfg.Pi.Samples)
	require.Equal(t, 2, cfg.Pi.Workers)
	require.EqualValues(t, 9, cfg.Pi.Seed)
	require.Equal(t, 100, cfg.Lorem.Budget)
}

func TestLoadConfigReportsEveryProblem(t *testing.T) {
	t.Parallel()

	v := newViper()
	for k, val := range validViper() {
		v.Set(k, val)
	}
	v.Set(cfgLogLevel, "chatty")
	v.Set(cfgLogFormat, "xml")

	cfg, err := loadConfig(v)
	require.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	require.Contains(t, errs[0].Error(), cfgLogLevel)
	require.Contains(t, errs[1].Error(), cfgLogFormat)
}

func TestSectionValidation(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Pi:    demo.PiParams{Samples: 0, Workers: 0, Budget: 1},
		Lorem: LoremConfig{Budget: 100},
	}
	require.NoError(t, cfg.ValidateLorem(), "pi problems do not concern lorem")

	errs := multierr.Errors(cfg.ValidatePi())
	require.Len(t, errs, 2)
	require.Contains(t, errs[0].Error(), cfgPiSamples)
	require.Contains(t, errs[1].Error(), cfgPiWorkers)

	cfg.Lorem.Budget = -1
	require.ErrorIs(t, cfg.ValidateLorem(), ErrInvalidConfig)
}

func TestInvalidPiSettingsOnlyBlockPi(t *testing.T) {
	t.Setenv("SX_PI_WORKERS", "0")

	out := runSx(t, "lorem", "--seed", "3")
	require.NotEmpty(t, strings.TrimSpace(out))

	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"pi", "--samples", "10"})
	err := root.Execute()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), cfgPiWorkers)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("SX_PI_WORKERS", "3")
	t.Setenv("SX_LOG_FORMAT", "json")

	v := newViper()
	v.SetDefault(cfgPiWorkers, 8)
	require.Equal(t, 3, v.GetInt(cfgPiWorkers))
	require.Equal(t, "json", v.GetString(cfgLogFormat))
}

func TestConfigFileAndFlags(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lorem:\n  budget: 0\n"), 0o600))

	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"lorem", "--config", path, "--seed", "3"})

	err := root.Execute()
	require.ErrorIs(t, err, ErrInvalidConfig, "file value is picked up and validated")
	require.Contains(t, err.Error(), cfgLoremBudget)

	root = NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"lorem", "--config", path, "--budget", "100", "--seed", "3"})
	require.NoError(t, root.Execute(), "flag wins over file")
}

func runSx(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	require.NoError(t, root.Execute())

	return out.String()
}

func TestLoremCommandIsReproducible(t *testing.T) {
	t.Parallel()

	first := runSx(t, "lorem", "--seed", "11")
	second := runSx(t, "lorem", "--seed", "11")
	require.Equal(t, first, second)

	paragraphs := strings.Split(strings.TrimSpace(first), "\n\n")
	require.GreaterOrEqual(t, len(paragraphs), 3)
	require.LessOrEqual(t, len(paragraphs), 7)
}

func TestPiCommand(t *testing.T) {
	t.Parallel()

	out := runSx(t, "pi", "--samples", "100000", "--workers", "2", "--seed", "5")
	pi, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	require.InDelta(t, 3.14159, pi, 0.05)
}
