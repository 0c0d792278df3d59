package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := NewServiceAtPath(filepath.Join(t.TempDir(), "config.toml"), nil)

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, "ids", cfg.Format)
	assert.True(t, cfg.UISettings.ShowLabels)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewServiceAtPath(path, nil)

	cfg := DefaultConfig()
	cfg.BaseURL = "http://catalog.internal:9000"
	cfg.PageSize = 20
	cfg.Format = "json"
	cfg.UISettings.RememberPageSize = false
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://catalog.internal:9000", loaded.BaseURL)
	assert.Equal(t, 20, loaded.PageSize)
	assert.Equal(t, "json", loaded.Format)
	assert.False(t, loaded.UISettings.RememberPageSize)
}

func TestLoadNormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "version = 1\npage_size = 7\nformat = \"xml\"\nrequest_timeout_seconds = -3\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cs := NewServiceAtPath(path, nil)
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.PageSize, "7 is not a permitted page size")
	assert.Equal(t, "ids", cfg.Format)
	assert.Positive(t, cfg.RequestTimeoutSeconds)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [unclosed"), 0o644))

	cs := NewServiceAtPath(path, nil)
	_, err := cs.Load()
	require.Error(t, err)
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("RECSEL_BASE_URL", "http://override:1234")

	cs := NewServiceAtPath(filepath.Join(t.TempDir(), "config.toml"), nil)
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://override:1234", cfg.BaseURL)
}

func TestValidPageSize(t *testing.T) {
	for _, n := range PageSizes {
		assert.True(t, ValidPageSize(n), "size %d", n)
	}
	for _, n := range []int{0, -5, 1, 7, 15, 100} {
		assert.False(t, ValidPageSize(n), "size %d", n)
	}
}

func TestNextPageSizeCycles(t *testing.T) {
	assert.Equal(t, 10, NextPageSize(5))
	assert.Equal(t, 20, NextPageSize(10))
	assert.Equal(t, 5, NextPageSize(20))
	assert.Equal(t, DefaultPageSize, NextPageSize(7), "unknown sizes reset to the default")
}
