package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials")
	content := `[default]
aws_access_key_id = AKIAEXAMPLE
aws_secret_access_key = secret

[staging]
aws_access_key_id = AKIASTAGING
aws_secret_access_key = secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "staging"}, profiles)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ebsight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rate_per_gib_month: 0.08\n"), 0o600))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.08, settings.RatePerGiBMonth, 1e-9)
	// unset keys fall back to defaults
	assert.Equal(t, "localhost:8080", settings.ServerAddr)
}
