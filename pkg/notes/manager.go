package notes

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/paths"
	"github.com/mattsolo1/epiphany/pkg/templates"
)

// MaxSuffixProbes is how many numbered variants of a slug are tried before
// falling back to the note id.
const MaxSuffixProbes = 25

// Manager creates, reads, renames and writes note files in <root>/notes
type Manager struct {
	templates templates.Provider
}

// NewManager creates a note manager using provider for the blank note template
func NewManager(provider templates.Provider) *Manager {
	return &Manager{templates: provider}
}

// CreateBlank writes <root>/notes/<noteID>.djot from the empty note template.
func (m *Manager) CreateBlank(root, noteID string) error {
	path := paths.NotePath(root, models.DefaultFilename(noteID))

	blank, err := m.templates.Get(templates.EmptyNote)
	if err != nil {
		return models.NewError(models.KindNoteCreateFailed, "create note", path, err)
	}
	if err := os.WriteFile(path, blank, 0644); err != nil {
		return models.NewError(models.KindNoteCreateFailed, "create note", path, err)
	}
	return nil
}

// Read returns the text of <root>/notes/<filename>.
func (m *Manager) Read(root, filename string) (string, error) {
	path := paths.NotePath(root, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", models.NewError(models.KindNoteReadFailed, "read note", path, err)
	}
	if !utf8.Valid(data) {
		return "", models.NewError(models.KindNoteNotValidText, "read note", path, errors.New("invalid UTF-8"))
	}
	return string(data), nil
}

// Save writes content to the note, first renaming the file to match title
// when needed. It returns the filename the note ends up with.
func (m *Manager) Save(root, noteID, title, currentFilename, content string) (string, error) {
	newFilename := m.ResolveFilename(root, noteID, title, currentFilename)

	if newFilename != currentFilename {
		from := paths.NotePath(root, currentFilename)
		to := paths.NotePath(root, newFilename)
		if err := os.Rename(from, to); err != nil {
			return "", models.NewError(models.KindNoteSaveFailed, "rename note", from, err)
		}
	}

	path := paths.NotePath(root, newFilename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", models.NewError(models.KindNoteSaveFailed, "write note", path, err)
	}
	return newFilename, nil
}

// ResolveFilename picks the filename a note should have after being titled.
//
// A note still at its default <id>.djot name takes <slug>.djot, or the first
// free <slug>_N.djot for N up to MaxSuffixProbes, or <slug>_<id>.djot.
// Any other note moves to <slug>.djot only when that name is free; on a
// collision it keeps its current name.
func (m *Manager) ResolveFilename(root, noteID, title, currentFilename string) string {
	slug := Slugify(title)
	if slug == "" {
		return currentFilename
	}

	candidate := slug + models.NoteExtension

	if title != models.UnnamedNoteTitle && currentFilename == models.DefaultFilename(noteID) {
		if !exists(paths.NotePath(root, candidate)) {
			return candidate
		}
		for n := 1; n <= MaxSuffixProbes; n++ {
			numbered := fmt.Sprintf("%s_%d%s", slug, n, models.NoteExtension)
			if !exists(paths.NotePath(root, numbered)) {
				return numbered
			}
		}
		return fmt.Sprintf("%s_%s%s", slug, noteID, models.NoteExtension)
	}

	if candidate != currentFilename && !exists(paths.NotePath(root, candidate)) {
		return candidate
	}
	return currentFilename
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
