package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/templates"
)

func TestIndexRoundTrip(t *testing.T) {
	root := t.TempDir()
	store := NewIndexStore(templates.Bundled())

	content := &models.WorkspaceContent{
		WorkspaceTitle: "notes",
		AbsolutePath:   root,
		ContentTable: []*models.ContentItem{
			{Name: "First", Filename: "first.djot", ID: "id-1", Children: []*models.ContentItem{
				{Name: "Nested", Filename: "nested.djot", ID: "id-2", Children: []*models.ContentItem{}},
			}},
			{Name: "Second", Filename: "second.djot", ID: "id-3", Children: []*models.ContentItem{}},
		},
	}

	require.NoError(t, store.Save(root, content))
	loaded, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, content, loaded)
}

func TestIndexSaveWritesEmptyChildren(t *testing.T) {
	root := t.TempDir()
	store := NewIndexStore(templates.Bundled())

	content := &models.WorkspaceContent{
		WorkspaceTitle: "notes",
		ContentTable:   []*models.ContentItem{{Name: "a", Filename: "a.djot", ID: "a"}},
	}
	require.NoError(t, store.Save(root, content))

	data, err := os.ReadFile(filepath.Join(root, "epiphany.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"children": []`)
	assert.NotContains(t, string(data), "null")

	// the caller's value is not touched
	assert.Nil(t, content.ContentTable[0].Children)
}

func TestIndexSaveWritesEmptyContentTable(t *testing.T) {
	root := t.TempDir()
	store := NewIndexStore(templates.Bundled())

	content := &models.WorkspaceContent{WorkspaceTitle: "notes", AbsolutePath: root}
	require.NoError(t, store.Save(root, content))

	data, err := os.ReadFile(filepath.Join(root, "epiphany.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content_table": []`)
	assert.Nil(t, content.ContentTable)
}

func TestIndexLoadErrors(t *testing.T) {
	store := NewIndexStore(templates.Bundled())

	_, err := store.Load(t.TempDir())
	assert.True(t, errors.Is(err, models.ErrIndexReadFailed), "missing file: %v", err)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "epiphany.json"), []byte("{not json"), 0644))
	_, err = store.Load(root)
	assert.True(t, errors.Is(err, models.ErrIndexMalformed), "bad json: %v", err)
}

func TestIndexSaveFailure(t *testing.T) {
	store := NewIndexStore(templates.Bundled())
	root := filepath.Join(t.TempDir(), "does-not-exist")

	err := store.Save(root, &models.WorkspaceContent{})
	assert.True(t, errors.Is(err, models.ErrIndexWriteFailed), "got %v", err)

	err = store.Save(t.TempDir(), nil)
	assert.True(t, errors.Is(err, models.ErrIndexWriteFailed))
}

func TestInitialize(t *testing.T) {
	root := filepath.Join(t.TempDir(), "notes-root")
	store := NewIndexStore(templates.Bundled())
	store.newID = func() string { return "seed-id" }

	content, err := store.Initialize(root)
	require.NoError(t, err)

	assert.Equal(t, "notes", content.WorkspaceTitle)
	assert.Equal(t, root, content.AbsolutePath)
	require.Len(t, content.ContentTable, 1)
	assert.Equal(t, &models.ContentItem{
		Name:     "Welcome to Epiphany",
		Filename: "welcome_to_epiphany.djot",
		ID:       "seed-id",
		Children: []*models.ContentItem{},
	}, content.ContentTable[0])

	for _, dir := range []string{"notes", "assets"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	welcome, err := os.ReadFile(filepath.Join(root, "notes", WelcomeFilename))
	require.NoError(t, err)
	assert.Contains(t, string(welcome), "Welcome to Epiphany")

	loaded, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, content, loaded)
}

func TestInitializeRerunKeepsFilesButResetsIndex(t *testing.T) {
	root := t.TempDir()
	store := NewIndexStore(templates.Bundled())

	first, err := store.Initialize(root)
	require.NoError(t, err)

	keepNote := filepath.Join(root, "notes", "keep.djot")
	keepAsset := filepath.Join(root, "assets", "image.png")
	require.NoError(t, os.WriteFile(keepNote, []byte("mine"), 0644))
	require.NoError(t, os.WriteFile(keepAsset, []byte("png"), 0644))
	welcomePath := filepath.Join(root, "notes", WelcomeFilename)
	require.NoError(t, os.WriteFile(welcomePath, []byte("edited welcome"), 0644))

	first.ContentTable = append(first.ContentTable, &models.ContentItem{Name: "Keep", Filename: "keep.djot", ID: "k"})
	require.NoError(t, store.Save(root, first))

	second, err := store.Initialize(root)
	require.NoError(t, err)

	// Existing content in notes/ and assets/ survives.
	data, err := os.ReadFile(keepNote)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
	_, err = os.Stat(keepAsset)
	assert.NoError(t, err)

	// The index and the welcome note are overwritten.
	assert.Len(t, second.ContentTable, 1)
	assert.NotEqual(t, first.ContentTable[0].ID, second.ContentTable[0].ID)
	loaded, err := store.Load(root)
	require.NoError(t, err)
	assert.Len(t, loaded.ContentTable, 1)
	welcome, err := os.ReadFile(welcomePath)
	require.NoError(t, err)
	assert.NotEqual(t, "edited welcome", string(welcome))
}

func TestInitializeMissingWelcomeTemplate(t *testing.T) {
	store := NewIndexStore(templates.NewFSProvider(fstest.MapFS{}))

	_, err := store.Initialize(t.TempDir())
	assert.True(t, errors.Is(err, models.ErrIndexWriteFailed), "got %v", err)
}
