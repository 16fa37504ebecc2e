package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 150, cfg.Match.TargetScore)
	assert.Equal(t, 100, cfg.Bench.Matches)
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: console
match:
  target_score: 301
bench:
  matches: 10
  parallelism: 2
  seed: 99
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 301, cfg.Match.TargetScore)
	assert.Equal(t, 10, cfg.Bench.Matches)
	assert.Equal(t, int64(99), cfg.Bench.Seed)

	// Unset keys keep their defaults.
	assert.Equal(t, 1000, cfg.Bench.MaxDeals)
	assert.Equal(t, float64(32), cfg.Bench.KFactor)
}

func TestLoadKFactor(t *testing.T) {
	cfg, err := Load(writeConfig(t, "bench:\n  k_factor: 24\n"))
	require.NoError(t, err)
	assert.Equal(t, float64(24), cfg.Bench.KFactor)

	_, err = Load(writeConfig(t, "bench:\n  k_factor: 0\n"))
	assert.ErrorContains(t, err, "k_factor")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "logging:\n  level: verbose\n"))
	assert.ErrorContains(t, err, "logging.level")

	_, err = Load(writeConfig(t, "logging:\n  format: xml\n"))
	assert.ErrorContains(t, err, "logging.format")

	_, err = Load(writeConfig(t, "match:\n  target_score: -1\n"))
	assert.ErrorContains(t, err, "target_score")

	_, err = Load(writeConfig(t, "bench:\n  matches: 0\n"))
	assert.ErrorContains(t, err, "bench.matches")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "logging: [unclosed"))
	assert.Error(t, err)
}
