package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/tree"
)

type createOptions struct {
	parentID string
	id       string
}

// CreateOption configures NewNote
type CreateOption func(*createOptions)

// UnderParent nests the new note below the note with the given id.
func UnderParent(parentID string) CreateOption {
	return func(o *createOptions) {
		o.parentID = parentID
	}
}

// WithID uses a caller-chosen id instead of generating one.
func WithID(id string) CreateOption {
	return func(o *createOptions) {
		o.id = id
	}
}

// NewNote creates a blank note file, adds it to the index as "Unnamed Note"
// and persists the index.
func (s *Service) NewNote(ctx *WorkspaceContext, options ...CreateOption) (*models.ContentItem, error) {
	opts := &createOptions{}
	for _, opt := range options {
		opt(opts)
	}
	if opts.id == "" {
		opts.id = s.indexStore.NewID()
	}

	content, err := s.currentContent(ctx)
	if err != nil {
		return nil, err
	}
	if existing, _ := tree.Find(content.ContentTable, opts.id); existing != nil {
		return nil, fmt.Errorf("note id already in use: %s", opts.id)
	}

	updated := content.Clone()
	item := &models.ContentItem{
		Name:     models.UnnamedNoteTitle,
		Filename: models.DefaultFilename(opts.id),
		ID:       opts.id,
		Children: []*models.ContentItem{},
	}
	if err := tree.Insert(updated, opts.parentID, item); err != nil {
		return nil, err
	}

	if err := s.CreateNewFile(ctx, opts.id); err != nil {
		return nil, err
	}
	if err := s.UpdateWorkspaceIndex(ctx, updated); err != nil {
		return nil, err
	}
	return item, nil
}

// RenameNote retitles the note with the given id, saves content into it and
// records the resulting filename in the index.
func (s *Service) RenameNote(ctx *WorkspaceContext, id, title, content string) (*models.ContentItem, error) {
	current, err := s.currentContent(ctx)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	item, _ := tree.Find(updated.ContentTable, id)
	if item == nil {
		return nil, fmt.Errorf("note not found: %s", id)
	}

	filename, err := s.SaveFile(ctx, id, title, item.Filename, content)
	if err != nil {
		return nil, err
	}
	item.Name = title
	item.Filename = filename

	if err := s.UpdateWorkspaceIndex(ctx, updated); err != nil {
		return nil, err
	}
	return item, nil
}

// MoveNote re-parents a note (with its children) below parentID, or to the
// top level when parentID is empty, and persists the index.
func (s *Service) MoveNote(ctx *WorkspaceContext, id, parentID string) error {
	current, err := s.currentContent(ctx)
	if err != nil {
		return err
	}

	updated := current.Clone()
	item, _ := tree.Find(updated.ContentTable, id)
	if item == nil {
		return fmt.Errorf("note not found: %s", id)
	}
	if parentID != "" {
		if id == parentID {
			return fmt.Errorf("cannot move note into itself")
		}
		if inside, _ := tree.Find(item.Children, parentID); inside != nil {
			return fmt.Errorf("cannot move note into its own child %s", parentID)
		}
	}

	if _, err := tree.Remove(updated, id); err != nil {
		return err
	}
	if err := tree.Insert(updated, parentID, item); err != nil {
		return err
	}
	return s.UpdateWorkspaceIndex(ctx, updated)
}

// Check inspects the workspace index for duplicate ids, duplicate filenames
// and missing note files.
func (s *Service) Check(ctx *WorkspaceContext) ([]tree.Problem, error) {
	content, err := s.currentContent(ctx)
	if err != nil {
		return nil, err
	}

	problems := tree.Check(content.ContentTable, func(filename string) bool {
		return s.noteExists(ctx, filename)
	})
	for _, p := range problems {
		s.Logger.WithFields(logrus.Fields{
			"workspace": ctx.Root(),
			"kind":      p.Kind,
			"id":        p.ItemID,
		}).Warn(p.Detail)
	}
	return problems, nil
}

// currentContent returns the cached index when it belongs to ctx, loading it otherwise.
func (s *Service) currentContent(ctx *WorkspaceContext) (*models.WorkspaceContent, error) {
	if s.content != nil && s.content.AbsolutePath == ctx.Root() {
		return s.content, nil
	}
	content, err := s.indexStore.Load(ctx.Root())
	if err != nil {
		return nil, err
	}
	s.content = content
	return content, nil
}
