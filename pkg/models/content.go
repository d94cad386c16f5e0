package models

const (
	// NoteExtension is the file extension of every note in a workspace.
	NoteExtension = ".djot"

	// UnnamedNoteTitle is the placeholder title of a freshly created note.
	UnnamedNoteTitle = "Unnamed Note"

	// DefaultWorkspaceTitle is the display name given to the root of a new workspace.
	DefaultWorkspaceTitle = "notes"
)

// ContentItem is a single note in the workspace tree
type ContentItem struct {
	Name     string         `json:"name" yaml:"name"`
	Filename string         `json:"filename" yaml:"filename"`
	ID       string         `json:"id" yaml:"id"`
	Children []*ContentItem `json:"children" yaml:"children"`
}

// WorkspaceContent is the index of a workspace, persisted as epiphany.json
type WorkspaceContent struct {
	WorkspaceTitle string         `json:"workspace_title" yaml:"workspace_title"`
	AbsolutePath   string         `json:"absolute_path" yaml:"absolute_path"`
	ContentTable   []*ContentItem `json:"content_table" yaml:"content_table"`
}

// DefaultFilename returns the name a note carries until it is first titled.
func DefaultFilename(id string) string {
	return id + NoteExtension
}

// Clone returns a deep copy of the item and its children.
func (c *ContentItem) Clone() *ContentItem {
	if c == nil {
		return nil
	}
	out := &ContentItem{
		Name:     c.Name,
		Filename: c.Filename,
		ID:       c.ID,
		Children: make([]*ContentItem, 0, len(c.Children)),
	}
	for _, child := range c.Children {
		out.Children = append(out.Children, child.Clone())
	}
	return out
}

// Clone returns a deep copy of the workspace content.
func (w *WorkspaceContent) Clone() *WorkspaceContent {
	if w == nil {
		return nil
	}
	out := &WorkspaceContent{
		WorkspaceTitle: w.WorkspaceTitle,
		AbsolutePath:   w.AbsolutePath,
		ContentTable:   make([]*ContentItem, 0, len(w.ContentTable)),
	}
	for _, item := range w.ContentTable {
		out.ContentTable = append(out.ContentTable, item.Clone())
	}
	return out
}
