package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattsolo1/epiphany/pkg/paths"
)

// WelcomeFilename is the seed note written into every new workspace.
const WelcomeFilename = "welcome_to_epiphany.djot"

// WelcomeTitle is the display name of the seed note.
const WelcomeTitle = "Welcome to Epiphany"

// Workspace is a directory holding notes/, assets/ and epiphany.json
type Workspace struct {
	Root string
}

// New returns the workspace rooted at root, with "~" expanded.
func New(root string) (*Workspace, error) {
	w := &Workspace{Root: root}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// NotesDir returns the directory holding note files
func (w *Workspace) NotesDir() string {
	return paths.NotesDir(w.Root)
}

// AssetsDir returns the directory holding attachments
func (w *Workspace) AssetsDir() string {
	return paths.AssetsDir(w.Root)
}

// IndexPath returns the location of epiphany.json
func (w *Workspace) IndexPath() string {
	return paths.IndexFile(w.Root)
}

// NotePath returns the location of a note file
func (w *Workspace) NotePath(filename string) string {
	return paths.NotePath(w.Root, filename)
}

// EnsureDirectories creates the root, notes/ and assets/. Existing directories are left alone.
func (w *Workspace) EnsureDirectories() error {
	for _, dir := range []string{w.Root, w.NotesDir(), w.AssetsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// IsInitialized reports whether the workspace already has an index file.
func (w *Workspace) IsInitialized() bool {
	info, err := os.Stat(w.IndexPath())
	return err == nil && !info.IsDir()
}

// Validate checks the root and expands a leading "~"
func (w *Workspace) Validate() error {
	if strings.TrimSpace(w.Root) == "" {
		return fmt.Errorf("workspace path cannot be empty")
	}

	if strings.HasPrefix(w.Root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		w.Root = filepath.Join(home, w.Root[1:])
	}

	return nil
}
