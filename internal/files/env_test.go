package files

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBasePathHonorsJamHome(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom-root")
	t.Setenv(HomeEnv, custom)

	got, err := ResolveBasePath()
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestResolveBasePathExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(HomeEnv, "~/jam-data")

	got, err := ResolveBasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "jam-data"), got)
}

func TestResolveBasePathDefaultsToHomeDotJam(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(HomeEnv, "  ")

	got, err := ResolveBasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultDirName), got)
}
