package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := path.Join(t.TempDir(), "config.yaml")
	assert.Nil(t, os.WriteFile(file, []byte(content), 0o666))
	return file
}

func TestLoad(t *testing.T) {
	file := writeConfig(t, `
solver:
  time_limit: 30s
  workers: 4
horizon: 1000
log_level: debug
`)

	cfg, err := Load(file)

	assert.Nil(t, err)
	assert.EqualValues(t, 4, cfg.Solver.Workers)
	assert.EqualValues(t, 1000, cfg.Horizon)
	assert.Equal(t, "debug", cfg.LogLevel)

	limit, err := cfg.TimeLimit()
	assert.Nil(t, err)
	assert.Equal(t, 30*time.Second, limit)
}

func TestLoadKeepsDefaults(t *testing.T) {
	file := writeConfig(t, `horizon: 42`)

	cfg, err := Load(file)

	assert.Nil(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.EqualValues(t, 42, cfg.Horizon)

	limit, err := cfg.TimeLimit()
	assert.Nil(t, err)
	assert.Zero(t, limit)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	file := writeConfig(t, `
solver:
  time_limit: soon
`)

	_, err := Load(file)

	assert.NotNil(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(path.Join(t.TempDir(), "absent.yaml"))

	assert.NotNil(t, err)
}
