// Package workspace discovers the analyzable packages of a workspace.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pubaudit/pubaudit/internal/adapters/fs"
	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/pubaudit/pubaudit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Scanner implements ports.WorkspaceScanner on top of the filesystem.
type Scanner struct {
	logger ports.Logger
	fs     fs.FileSystem
}

// NewScanner creates a new Scanner with the given logger and filesystem.
func NewScanner(logger ports.Logger, filesystem fs.FileSystem) *Scanner {
	return &Scanner{logger: logger, fs: filesystem}
}

// manifestDTO is the informational subset of a pubspec manifest.
type manifestDTO struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// Scan lists the packages directory and classifies each immediate child. A
// child is a package iff it is a directory holding a regular pubspec.yaml at
// its top level; everything else is skipped silently. Children are visited in
// lexicographic order, so the returned slice is ordered the same way.
func (s *Scanner) Scan(ws domain.Workspace) ([]domain.Package, error) {
	info, err := s.fs.Stat(ws.PackagesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(domain.ErrWorkspaceNotFound, "packages_dir", ws.PackagesDir)
		}
		return nil, zerr.Wrap(err, domain.ErrWorkspaceScanFailed.Error())
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrWorkspaceNotFound, "packages_dir", ws.PackagesDir)
	}

	entries, err := s.fs.ReadDir(ws.PackagesDir)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkspaceScanFailed.Error())
	}

	var pkgs []domain.Package
	for _, entry := range entries {
		name := entry.Name()
		if ws.Excluded(name) {
			continue
		}

		dir := filepath.Join(ws.PackagesDir, name)
		pkg, ok, err := s.classify(name, dir)
		if err != nil {
			return nil, err
		}
		if ok {
			pkgs = append(pkgs, pkg)
		}
	}

	return pkgs, nil
}

// classify decides whether a single candidate directory is a package and, if
// so, builds its descriptor. A missing manifest is a valid negative result,
// not a failure; a manifest that exists but cannot be read is an environment
// fault and propagates.
func (s *Scanner) classify(name, dir string) (domain.Package, bool, error) {
	// Stat instead of DirEntry.IsDir so that symlinked package dirs count.
	isDir, err := s.fs.IsDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Package{}, false, nil
		}
		return domain.Package{}, false, zerr.Wrap(err, domain.ErrWorkspaceScanFailed.Error())
	}
	if !isDir {
		return domain.Package{}, false, nil
	}

	manifestPath := filepath.Join(dir, domain.ManifestFileName)
	manifestInfo, err := s.fs.Stat(manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Package{}, false, nil
		}
		return domain.Package{}, false, zerr.Wrap(err, domain.ErrWorkspaceScanFailed.Error())
	}
	if !manifestInfo.Mode().IsRegular() {
		return domain.Package{}, false, nil
	}

	contents, err := s.fs.ReadFile(manifestPath)
	if err != nil {
		return domain.Package{}, false, zerr.With(
			zerr.Wrap(err, domain.ErrManifestReadFailed.Error()),
			"package", name,
		)
	}

	return domain.Package{
		Name:      name,
		Dir:       dir,
		Toolchain: domain.DetectToolchain(contents),
		Manifest:  s.parseManifest(name, contents),
	}, true, nil
}

// parseManifest extracts informational metadata from the manifest. Toolchain
// detection never depends on yaml validity, so a manifest that fails to parse
// degrades to empty metadata instead of failing the scan.
func (s *Scanner) parseManifest(name string, contents []byte) domain.Manifest {
	var dto manifestDTO
	if err := yaml.Unmarshal(contents, &dto); err != nil {
		s.logger.Warn(fmt.Sprintf("manifest of %s is not valid yaml, metadata unavailable", name))
		return domain.Manifest{}
	}
	return domain.Manifest{
		Name:        dto.Name,
		Version:     dto.Version,
		Description: dto.Description,
	}
}
