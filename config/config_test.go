package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "token: abc123\noutput_dir: /tmp/signed\nink:\n  min_width: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.Token)
	assert.Equal(t, "/tmp/signed", cfg.OutputDir)
	assert.Equal(t, float64(2), cfg.Ink.MinWidth)
	// untouched fields keep their defaults
	assert.Equal(t, Default().APIURL, cfg.APIURL)
	assert.Equal(t, Default().RenderWidth, cfg.RenderWidth)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(APIURLEnvVar, "https://staging.example.com")
	t.Setenv(TokenEnvVar, "env-token")

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: file-token\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.APIURL)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	want := Default()
	want.Token = "saved"
	want.BatchSize = 8

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
