package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "output_dir": "/tmp/cvs", "verbose": true}`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/cvs", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("CV_OUTPUT_DIR", "/var/cvs")

	cfg := FromEnv()

	assert.Equal(t, 8088, cfg.Port)
	assert.Equal(t, "/var/cvs", cfg.OutputDir)
}

func TestFromEnv_InvalidPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, 0, cfg.Port)
}

func TestValidate_PortRange(t *testing.T) {
	valid := Config{Port: 8080}
	assert.NoError(t, valid.Validate())

	tooBig := Config{Port: 70000}
	assert.Error(t, tooBig.Validate())

	negative := Config{Port: -1}
	assert.Error(t, negative.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{Port: 8080, OutputDir: "/tmp"})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "/tmp", merged.OutputDir)
}

func TestMergeWithDefaults_AllZero(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{Port: 8080, OutputDir: "/tmp"})

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "/tmp", merged.OutputDir)
}
