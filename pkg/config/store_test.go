package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/paths"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "config", "epiphany")
	return NewStore(paths.NewResolver(dir)), dir
}

func TestSaveAndLoad(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, store.Save([]string{"/home/alice/notes", "/home/alice/other"}))

	data, err := os.ReadFile(filepath.Join(dir, paths.ConfigFilename))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"workspace_paths\": [\n    \"/home/alice/notes\",\n    \"/home/alice/other\"\n  ]\n}", string(data))

	active, cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "/home/alice/notes", active)
	assert.Equal(t, []string{"/home/alice/notes", "/home/alice/other"}, cfg.WorkspacePaths)
}

func TestSaveIsIdempotentOnExistingDir(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.MkdirAll(dir, 0755))

	require.NoError(t, store.Save([]string{"/a"}))
	require.NoError(t, store.Save([]string{"/b"}))

	active, _, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "/b", active, "save should overwrite the previous config")
}

func TestSaveFailsWhenConfigDirIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	store := NewStore(paths.NewResolver(filepath.Join(blocker, "epiphany")))
	assert.Error(t, store.Save([]string{"/a"}))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    *models.Error
	}{
		{name: "missing file", content: nil, want: models.ErrNotConfigured},
		{name: "malformed json", content: strPtr("{\"workspace_paths\": ["), want: models.ErrMalformedConfig},
		{name: "wrong type", content: strPtr("{\"workspace_paths\": \"/a\"}"), want: models.ErrMalformedConfig},
		{name: "empty list", content: strPtr("{\"workspace_paths\": []}"), want: models.ErrNoWorkspaceConfigured},
		{name: "absent key", content: strPtr("{}"), want: models.ErrNoWorkspaceConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, dir := newTestStore(t)
			if tt.content != nil {
				require.NoError(t, os.MkdirAll(dir, 0755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, paths.ConfigFilename), []byte(*tt.content), 0644))
			}

			_, _, err := store.Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
