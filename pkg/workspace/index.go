package workspace

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/google/uuid"

	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/templates"
	"github.com/mattsolo1/epiphany/pkg/tree"
)

// IndexStore reads and writes the workspace index, epiphany.json
type IndexStore struct {
	templates templates.Provider
	newID     func() string
}

// NewIndexStore creates an index store. The provider supplies the welcome note for Initialize.
func NewIndexStore(provider templates.Provider) *IndexStore {
	return &IndexStore{templates: provider, newID: uuid.NewString}
}

// Save overwrites <root>/epiphany.json with content. Missing children are
// written as empty lists; content itself is left unchanged.
func (s *IndexStore) Save(root string, content *models.WorkspaceContent) error {
	path := (&Workspace{Root: root}).IndexPath()
	if content == nil {
		return models.NewError(models.KindIndexWriteFailed, "write index", path, errors.New("no content"))
	}

	out := content.Clone()
	tree.Normalize(out.ContentTable)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return models.NewError(models.KindIndexWriteFailed, "marshal index", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return models.NewError(models.KindIndexWriteFailed, "write index", path, err)
	}
	return nil
}

// Load reads and parses <root>/epiphany.json.
func (s *IndexStore) Load(root string) (*models.WorkspaceContent, error) {
	path := (&Workspace{Root: root}).IndexPath()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewError(models.KindIndexReadFailed, "read index", path, err)
	}

	var content models.WorkspaceContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, models.NewError(models.KindIndexMalformed, "parse index", path, err)
	}
	return &content, nil
}

// Initialize lays out a fresh workspace at root: notes/, assets/, the welcome
// note and a new index pointing at it. An existing index and welcome note are
// overwritten; other files are kept.
func (s *IndexStore) Initialize(root string) (*models.WorkspaceContent, error) {
	w, err := New(root)
	if err != nil {
		return nil, models.NewError(models.KindIndexWriteFailed, "initialize workspace", root, err)
	}

	if err := w.EnsureDirectories(); err != nil {
		return nil, models.NewError(models.KindIndexWriteFailed, "initialize workspace", w.Root, err)
	}

	welcome, err := s.templates.Get(templates.WelcomeNote)
	if err != nil {
		return nil, models.NewError(models.KindIndexWriteFailed, "initialize workspace", w.Root, err)
	}
	welcomePath := w.NotePath(WelcomeFilename)
	if err := os.WriteFile(welcomePath, welcome, 0644); err != nil {
		return nil, models.NewError(models.KindIndexWriteFailed, "write welcome note", welcomePath, err)
	}

	content := &models.WorkspaceContent{
		WorkspaceTitle: models.DefaultWorkspaceTitle,
		AbsolutePath:   w.Root,
		ContentTable: []*models.ContentItem{
			{
				Name:     WelcomeTitle,
				Filename: WelcomeFilename,
				ID:       s.newID(),
				Children: []*models.ContentItem{},
			},
		},
	}

	if err := s.Save(w.Root, content); err != nil {
		return nil, err
	}
	return content, nil
}

// NewID returns a fresh note id.
func (s *IndexStore) NewID() string {
	return s.newID()
}
