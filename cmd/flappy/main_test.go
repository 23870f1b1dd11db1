package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandAppliesFlags(t *testing.T) {
	path := writeConfig(t, "difficulty: hard\ntick_rate: 30\nseed: 9\n")

	out, err := runCommand(t, "config", "--config", path, "--difficulty", "Master", "--seed", "11", "--log-level", "debug")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyMaster, cfg.Difficulty)
	assert.Equal(t, 30, cfg.TickRate, "unset flags keep the file value")
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.Default().SSH.IdleTimeout, cfg.SSH.IdleTimeout)
}

func TestConfigCommandRejectsBadFlags(t *testing.T) {
	path := writeConfig(t, "difficulty: simple\n")

	_, err := runCommand(t, "config", "--config", path, "--difficulty", "insane")
	assert.ErrorIs(t, err, config.ErrUnknownDifficulty)

	_, err = runCommand(t, "config", "--config", path, "--difficulty", "simple", "--fps", "0")
	assert.Error(t, err)
}

func TestConfigCommandDefaults(t *testing.T) {
	t.Cleanup(func() { flagDefaults = false })

	out, err := runCommand(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Equal(t, string(config.DefaultYAML()), out)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRuntimeConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TickRate = 120
	cfg.Seed = 5

	rt := runtimeConfig(cfg)
	assert.Equal(t, 120, rt.TickRate)
	assert.Equal(t, int64(5), rt.Seed)
	assert.Equal(t, 431.0, rt.CanvasW)
	assert.Equal(t, 768.0, rt.CanvasH)
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.log")

	logger, closeLog, err := newLogger(config.LogConfig{Level: "warn", File: path}, os.Stderr, "test")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "key", 1)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "loud"}, os.Stderr, "test")
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	store, err := storage.Open()
	require.NoError(t, err)
	defer store.Close()

	var out bytes.Buffer
	printSummary(&out, store)
	assert.Contains(t, out.String(), "No runs")

	for _, score := range []int{3, 9} {
		_, err := store.RecordRun(storage.Run{Difficulty: "hard", Score: score, Ticks: 100, Frontend: "terminal"})
		require.NoError(t, err)
	}

	out.Reset()
	printSummary(&out, store)
	assert.Contains(t, out.String(), "Runs:  2")
	assert.Contains(t, out.String(), "Best:  9")
	assert.Contains(t, out.String(), "Mean:  6.0")
	assert.Contains(t, out.String(), "  hard        9\n")
	assert.Contains(t, out.String(), "  simple      0\n")
	assert.Contains(t, out.String(), "  master      0\n")
}
