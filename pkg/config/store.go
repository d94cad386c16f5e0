package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/paths"
)

// Store reads and writes epiphany.conf.json in the application config directory
type Store struct {
	resolver *paths.Resolver
}

// NewStore creates a config store backed by the given resolver
func NewStore(resolver *paths.Resolver) *Store {
	return &Store{resolver: resolver}
}

// Path returns the location of the config file.
func (s *Store) Path() (string, error) {
	return s.resolver.ConfigFile()
}

// Save overwrites the config file with the given workspace paths.
func (s *Store) Save(workspacePaths []string) error {
	dir, err := s.resolver.ConfigDir()
	if err != nil {
		return err
	}

	if workspacePaths == nil {
		workspacePaths = []string{}
	}
	data, err := json.MarshalIndent(&models.Config{WorkspacePaths: workspacePaths}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// MkdirAll already treats an existing directory as success.
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(dir, paths.ConfigFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load reads the config file and returns the active workspace path with the parsed config.
func (s *Store) Load() (string, *models.Config, error) {
	path, err := s.resolver.ConfigFile()
	if err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, models.NewError(models.KindNotConfigured, "load config", path, nil)
		}
		return "", nil, models.NewError(models.KindNotConfigured, "load config", path, err)
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", nil, models.NewError(models.KindMalformedConfig, "parse config", path, err)
	}

	active := cfg.Active()
	if active == "" {
		return "", &cfg, models.NewError(models.KindNoWorkspaceConfigured, "load config", path, nil)
	}

	return active, &cfg, nil
}
