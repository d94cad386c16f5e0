package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattsolo1/epiphany/pkg/models"
)

// Application identity used to derive the config directory.
const (
	Qualifier    = "com"
	Organization = "Epiphany"
	Application  = "Epiphany"
)

const (
	ConfigFilename = "epiphany.conf.json"
	IndexFilename  = "epiphany.json"
	NotesDirname   = "notes"
	AssetsDirname  = "assets"
)

// Resolver computes the config directory. A non-empty Override is used as-is.
type Resolver struct {
	Override string

	// userConfigDir is swapped out in tests.
	userConfigDir func() (string, error)
}

// NewResolver returns a resolver that honors override when non-empty
func NewResolver(override string) *Resolver {
	return &Resolver{Override: override, userConfigDir: os.UserConfigDir}
}

// ConfigDir returns the platform config directory for the application.
//
//	linux:   $XDG_CONFIG_HOME/epiphany
//	darwin:  ~/Library/Application Support/com.Epiphany.Epiphany
//	windows: %AppData%\Epiphany\Epiphany\config
func (r *Resolver) ConfigDir() (string, error) {
	if r != nil && r.Override != "" {
		return r.Override, nil
	}

	lookup := os.UserConfigDir
	if r != nil && r.userConfigDir != nil {
		lookup = r.userConfigDir
	}
	base, err := lookup()
	if err != nil || base == "" {
		return "", models.NewError(models.KindNoConfigDirectory, "resolve config dir", "", err)
	}

	return platformDir(runtime.GOOS, base), nil
}

// ConfigFile returns the full path of the config file.
func (r *Resolver) ConfigFile() (string, error) {
	dir, err := r.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFilename), nil
}

func platformDir(goos, base string) string {
	switch goos {
	case "darwin":
		return filepath.Join(base, strings.Join([]string{Qualifier, Organization, Application}, "."))
	case "windows":
		return filepath.Join(base, Organization, Application, "config")
	default:
		return filepath.Join(base, strings.ToLower(strings.ReplaceAll(Application, " ", "")))
	}
}

// Join composes a path below base. It does no I/O.
func Join(base string, segments ...string) string {
	return filepath.Join(append([]string{base}, segments...)...)
}

// NotesDir returns <root>/notes
func NotesDir(root string) string {
	return Join(root, NotesDirname)
}

// AssetsDir returns <root>/assets
func AssetsDir(root string) string {
	return Join(root, AssetsDirname)
}

// IndexFile returns <root>/epiphany.json
func IndexFile(root string) string {
	return Join(root, IndexFilename)
}

// NotePath returns <root>/notes/<filename>
func NotePath(root, filename string) string {
	return Join(root, NotesDirname, filename)
}
