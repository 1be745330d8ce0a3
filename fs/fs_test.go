package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAt(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, InitAt(home, false))
	assert.Equal(t, filepath.Join(home, ".socialcal-home"), HomeSocialcalDir)
	assert.Equal(t, filepath.Join(home, ".socialcal-home", "auth.json"), HomeAuthPath)

	exists, err := FileExists(HomeSocialcalDir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = FileExists(HomeAuthPath)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, InitAt(home, true))
	assert.Equal(t, filepath.Join(home, ".socialcal-home-dev", "socialcal.log"), LogPath)
}
