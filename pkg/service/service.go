package service

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/epiphany/pkg/config"
	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/notes"
	"github.com/mattsolo1/epiphany/pkg/paths"
	"github.com/mattsolo1/epiphany/pkg/templates"
	"github.com/mattsolo1/epiphany/pkg/tree"
	"github.com/mattsolo1/epiphany/pkg/workspace"
)

// Service is the session state of the application: it owns the in-memory
// workspace index and exposes the workspace operations to the UI layer.
type Service struct {
	Config *Config
	Logger *logrus.Entry

	configStore *config.Store
	indexStore  *workspace.IndexStore
	notes       *notes.Manager

	content *models.WorkspaceContent
}

// Config holds service configuration
type Config struct {
	// ConfigDir overrides the platform config directory when non-empty.
	ConfigDir string
	// Templates supplies the blank and welcome notes. Defaults to the bundled ones.
	Templates templates.Provider
}

// WorkspaceContext identifies the workspace an operation acts on
type WorkspaceContext struct {
	Workspace *workspace.Workspace
	// Source records how the workspace was chosen: "config", "setup" or "override".
	Source string
}

// Root returns the workspace root directory.
func (c *WorkspaceContext) Root() string {
	return c.Workspace.Root
}

// New creates a new service
func New(cfg *Config, logger *logrus.Logger) (*Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Templates == nil {
		cfg.Templates = templates.Bundled()
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &Service{
		Config:      cfg,
		Logger:      logrus.NewEntry(logger).WithField("component", "service"),
		configStore: config.NewStore(paths.NewResolver(cfg.ConfigDir)),
		indexStore:  workspace.NewIndexStore(cfg.Templates),
		notes:       notes.NewManager(cfg.Templates),
	}, nil
}

// FirstTimeSetup records path as the only workspace and lays it out on disk.
func (s *Service) FirstTimeSetup(path string) (*WorkspaceContext, *models.WorkspaceContent, error) {
	ws, err := workspace.New(path)
	if err != nil {
		return nil, nil, fmt.Errorf("first time setup: %w", err)
	}

	if err := s.configStore.Save([]string{ws.Root}); err != nil {
		return nil, nil, err
	}

	if ws.IsInitialized() {
		s.Logger.WithField("workspace", ws.Root).Warn("re-running setup overwrites the existing index and welcome note")
	}

	content, err := s.indexStore.Initialize(ws.Root)
	if err != nil {
		return nil, nil, err
	}

	s.content = content
	s.Logger.WithFields(logrus.Fields{
		"workspace": ws.Root,
		"seed_id":   content.ContentTable[0].ID,
	}).Debug("workspace initialized")

	return &WorkspaceContext{Workspace: ws, Source: "setup"}, content, nil
}

// LoadConfig reads the active workspace from the config file and loads its index.
func (s *Service) LoadConfig() (*WorkspaceContext, *models.WorkspaceContent, error) {
	active, _, err := s.configStore.Load()
	if err != nil {
		return nil, nil, err
	}

	ctx := &WorkspaceContext{Workspace: &workspace.Workspace{Root: active}, Source: "config"}
	content, err := s.indexStore.Load(active)
	if err != nil {
		return nil, nil, err
	}

	s.content = content
	s.Logger.WithFields(logrus.Fields{
		"workspace": active,
		"notes":     tree.Count(content.ContentTable),
	}).Debug("workspace loaded")

	return ctx, content, nil
}

// GetWorkspaceContext returns the workspace to act on. A non-empty override
// path is used directly and bypasses the config file.
func (s *Service) GetWorkspaceContext(override string) (*WorkspaceContext, error) {
	if override == "" {
		ctx, _, err := s.LoadConfig()
		return ctx, err
	}

	ws, err := workspace.New(override)
	if err != nil {
		return nil, err
	}
	content, err := s.indexStore.Load(ws.Root)
	if err != nil {
		return nil, err
	}
	s.content = content
	return &WorkspaceContext{Workspace: ws, Source: "override"}, nil
}

// Content returns the last loaded or saved workspace index, or nil.
func (s *Service) Content() *models.WorkspaceContent {
	return s.content
}

// CreateNewFile creates a blank note file named after id.
func (s *Service) CreateNewFile(ctx *WorkspaceContext, id string) error {
	if err := s.notes.CreateBlank(ctx.Root(), id); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"workspace": ctx.Root(), "id": id}).Debug("note created")
	return nil
}

// LoadNote returns the text of a note file.
func (s *Service) LoadNote(ctx *WorkspaceContext, filename string) (string, error) {
	return s.notes.Read(ctx.Root(), filename)
}

// SaveFile writes a note, renaming it to match its title when needed, and
// returns the filename it ends up with.
func (s *Service) SaveFile(ctx *WorkspaceContext, id, title, currentFilename, content string) (string, error) {
	filename, err := s.notes.Save(ctx.Root(), id, title, currentFilename, content)
	if err != nil {
		return "", err
	}

	fields := logrus.Fields{"workspace": ctx.Root(), "id": id, "filename": filename}
	if filename != currentFilename {
		fields["previous"] = currentFilename
		s.Logger.WithFields(fields).Debug("note renamed")
	}
	s.Logger.WithFields(fields).Debug("note saved")
	return filename, nil
}

// UpdateWorkspaceIndex persists content as the workspace index and, on
// success, makes it the in-memory copy.
func (s *Service) UpdateWorkspaceIndex(ctx *WorkspaceContext, content *models.WorkspaceContent) error {
	if err := s.indexStore.Save(ctx.Root(), content); err != nil {
		return err
	}
	s.content = content
	s.Logger.WithFields(logrus.Fields{
		"workspace": ctx.Root(),
		"notes":     tree.Count(content.ContentTable),
	}).Debug("index updated")
	return nil
}

// ConfigPath returns the location of the application config file.
func (s *Service) ConfigPath() (string, error) {
	return s.configStore.Path()
}

// noteExists reports whether a note file is present in the workspace.
func (s *Service) noteExists(ctx *WorkspaceContext, filename string) bool {
	_, err := os.Stat(ctx.Workspace.NotePath(filename))
	return err == nil
}
