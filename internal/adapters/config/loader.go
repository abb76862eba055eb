// Package config provides the configuration loader for pubaudit.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/pubaudit/pubaudit/internal/adapters/fs"
	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/pubaudit/pubaudit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the config schema version this build understands.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
	fs     fs.FileSystem
}

// NewLoader creates a new Loader with the given logger and filesystem.
func NewLoader(logger ports.Logger, filesystem fs.FileSystem) *Loader {
	return &Loader{logger: logger, fs: filesystem}
}

// Load reads pubaudit.yaml from the workspace root and resolves it into a
// domain.Workspace. A missing config file yields the defaults: the root itself
// as packages dir, no excludes, PATH tools, info fail level.
func (l *Loader) Load(root string) (*domain.Workspace, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	ws := &domain.Workspace{
		Root:        absRoot,
		PackagesDir: absRoot,
		Tools:       domain.DefaultToolPaths(),
		FailLevel:   domain.FailLevelInfo,
	}

	configPath := filepath.Join(absRoot, domain.ConfigFileName)
	if _, statErr := l.fs.Stat(configPath); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return ws, nil
		}
		return nil, zerr.Wrap(statErr, domain.ErrConfigReadFailed.Error())
	}

	var cfg Config
	if err := readAndUnmarshalYAML(l.fs, configPath, &cfg); err != nil {
		return nil, err
	}

	if err := l.applyConfig(ws, cfg); err != nil {
		return nil, err
	}
	return ws, nil
}

// applyConfig overlays the parsed config file onto the default workspace.
func (l *Loader) applyConfig(ws *domain.Workspace, cfg Config) error {
	switch cfg.Version {
	case supportedVersion:
	case "":
		l.logger.Warn("no 'version' in " + domain.ConfigFileName + ", assuming " + supportedVersion)
	default:
		return zerr.With(domain.ErrUnsupportedConfigVersion, "version", cfg.Version)
	}

	if cfg.PackagesDir != "" {
		ws.PackagesDir = resolveDir(ws.Root, cfg.PackagesDir)
	}

	ws.Excludes = slices.Clone(cfg.Exclude)

	if cfg.FailLevel != "" {
		level, err := domain.ParseFailLevel(cfg.FailLevel)
		if err != nil {
			return err
		}
		ws.FailLevel = level
	}

	if cfg.Tools.Dart != "" {
		ws.Tools.Dart = cfg.Tools.Dart
	}
	if cfg.Tools.Flutter != "" {
		ws.Tools.Flutter = cfg.Tools.Flutter
	}

	return nil
}

// resolveDir resolves a configured directory against the workspace root.
func resolveDir(root, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](filesystem fs.FileSystem, configPath string, target *T) error {
	configFile, err := filesystem.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
