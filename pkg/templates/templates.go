package templates

import (
	"embed"
	"fmt"
	"io/fs"
)

// Names of the bundled templates.
const (
	EmptyNote   = "empty.djot"
	WelcomeNote = "welcome.djot"
)

//go:embed assets/*.djot
var bundled embed.FS

// Provider supplies note templates by name
type Provider interface {
	Get(name string) ([]byte, error)
}

// FSProvider serves templates from a filesystem, rooted at the template directory
type FSProvider struct {
	fsys fs.FS
}

// Bundled returns the provider for the templates compiled into the binary.
func Bundled() *FSProvider {
	sub, err := fs.Sub(bundled, "assets")
	if err != nil {
		// the embed pattern guarantees the directory exists
		panic(err)
	}
	return &FSProvider{fsys: sub}
}

// NewFSProvider serves templates from fsys.
func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{fsys: fsys}
}

func (p *FSProvider) Get(name string) ([]byte, error) {
	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	return data, nil
}
