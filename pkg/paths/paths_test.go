package paths

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/epiphany/pkg/models"
)

func TestPlatformDir(t *testing.T) {
	tests := []struct {
		goos string
		base string
		want string
	}{
		{"linux", "/home/alice/.config", filepath.Join("/home/alice/.config", "epiphany")},
		{"freebsd", "/home/alice/.config", filepath.Join("/home/alice/.config", "epiphany")},
		{"darwin", "/Users/Alice/Library/Application Support", filepath.Join("/Users/Alice/Library/Application Support", "com.Epiphany.Epiphany")},
		{"windows", "C:/Users/Alice/AppData/Roaming", filepath.Join("C:/Users/Alice/AppData/Roaming", "Epiphany", "Epiphany", "config")},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, platformDir(tt.goos, tt.base))
		})
	}
}

func TestConfigDirOverride(t *testing.T) {
	r := NewResolver("/tmp/override")

	dir, err := r.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override", dir)

	file, err := r.ConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/override", ConfigFilename), file)
}

func TestConfigDirUnavailable(t *testing.T) {
	r := &Resolver{userConfigDir: func() (string, error) {
		return "", errors.New("$HOME is not defined")
	}}

	_, err := r.ConfigDir()
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNoConfigDirectory))

	_, err = r.ConfigFile()
	assert.True(t, errors.Is(err, models.ErrNoConfigDirectory))
}

func TestWorkspacePaths(t *testing.T) {
	root := filepath.Join("home", "alice", "notes")

	assert.Equal(t, filepath.Join(root, "notes"), NotesDir(root))
	assert.Equal(t, filepath.Join(root, "assets"), AssetsDir(root))
	assert.Equal(t, filepath.Join(root, "epiphany.json"), IndexFile(root))
	assert.Equal(t, filepath.Join(root, "notes", "a.djot"), NotePath(root, "a.djot"))
	assert.Equal(t, root, Join(root))
}
