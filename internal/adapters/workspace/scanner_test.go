package workspace_test

import (
	"testing"
	"testing/fstest"

	"github.com/pubaudit/pubaudit/internal/adapters/fs"
	"github.com/pubaudit/pubaudit/internal/adapters/workspace"
	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/pubaudit/pubaudit/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScanner(t *testing.T, files fstest.MapFS) *workspace.Scanner {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	return workspace.NewScanner(mockLogger, fs.NewMapFSAdapter("/ws", files))
}

func testWorkspace() domain.Workspace {
	return domain.Workspace{
		Root:        "/ws",
		PackagesDir: "/ws",
		Tools:       domain.DefaultToolPaths(),
		FailLevel:   domain.FailLevelInfo,
	}
}

func TestScanner_Scan(t *testing.T) {
	scanner := newTestScanner(t, fstest.MapFS{
		// zeta before alpha on purpose: order must come from the listing, not
		// insertion order
		"zeta/pubspec.yaml":  &fstest.MapFile{Data: []byte("name: zeta\nversion: 2.0.0\n")},
		"alpha/pubspec.yaml": &fstest.MapFile{Data: []byte("name: alpha\nversion: 1.0.0\n")},
		"beta/pubspec.yaml":  &fstest.MapFile{Data: []byte("name: beta\ndependencies:\n  flutter:\n    sdk: flutter\n")},
		"notes/README.md":    &fstest.MapFile{Data: []byte("no manifest here")},
		"stray.txt":          &fstest.MapFile{Data: []byte("not a directory")},
	})

	pkgs, err := scanner.Scan(testWorkspace())
	require.NoError(t, err)

	require.Len(t, pkgs, 3)
	assert.Equal(t, "alpha", pkgs[0].Name)
	assert.Equal(t, "beta", pkgs[1].Name)
	assert.Equal(t, "zeta", pkgs[2].Name)

	assert.Equal(t, domain.ToolchainDart, pkgs[0].Toolchain)
	assert.Equal(t, domain.ToolchainFlutter, pkgs[1].Toolchain)

	assert.Equal(t, "/ws/alpha", pkgs[0].Dir)
	assert.Equal(t, "1.0.0", pkgs[0].Manifest.Version)
	assert.Equal(t, "2.0.0", pkgs[2].Manifest.Version)
}

func TestScanner_Scan_SkipsManifestlessDirs(t *testing.T) {
	scanner := newTestScanner(t, fstest.MapFS{
		"docs/README.md":    &fstest.MapFile{Data: []byte("just docs")},
		"core/pubspec.yaml": &fstest.MapFile{Data: []byte("name: core\n")},
	})

	pkgs, err := scanner.Scan(testWorkspace())
	require.NoError(t, err)

	require.Len(t, pkgs, 1)
	assert.Equal(t, "core", pkgs[0].Name)
}

func TestScanner_Scan_ManifestMustBeRegularFile(t *testing.T) {
	// pubspec.yaml existing as a directory does not make a package
	scanner := newTestScanner(t, fstest.MapFS{
		"odd/pubspec.yaml/placeholder": &fstest.MapFile{Data: []byte("")},
		"core/pubspec.yaml":            &fstest.MapFile{Data: []byte("name: core\n")},
	})

	pkgs, err := scanner.Scan(testWorkspace())
	require.NoError(t, err)

	require.Len(t, pkgs, 1)
	assert.Equal(t, "core", pkgs[0].Name)
}

func TestScanner_Scan_Excludes(t *testing.T) {
	scanner := newTestScanner(t, fstest.MapFS{
		"core/pubspec.yaml":     &fstest.MapFile{Data: []byte("name: core\n")},
		"fixtures/pubspec.yaml": &fstest.MapFile{Data: []byte("name: fixtures\n")},
	})

	ws := testWorkspace()
	ws.Excludes = []string{"fixtures"}

	pkgs, err := scanner.Scan(ws)
	require.NoError(t, err)

	require.Len(t, pkgs, 1)
	assert.Equal(t, "core", pkgs[0].Name)
}

func TestScanner_Scan_EmptyWorkspace(t *testing.T) {
	scanner := newTestScanner(t, fstest.MapFS{
		".gitkeep": &fstest.MapFile{Data: []byte("")},
	})

	pkgs, err := scanner.Scan(testWorkspace())
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestScanner_Scan_MissingPackagesDir(t *testing.T) {
	scanner := newTestScanner(t, fstest.MapFS{})

	ws := testWorkspace()
	ws.PackagesDir = "/ws/packages"

	_, err := scanner.Scan(ws)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestScanner_Scan_PackagesDirIsFile(t *testing.T) {
	scanner := newTestScanner(t, fstest.MapFS{
		"packages": &fstest.MapFile{Data: []byte("not a dir")},
	})

	ws := testWorkspace()
	ws.PackagesDir = "/ws/packages"

	_, err := scanner.Scan(ws)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestScanner_Scan_InvalidManifestYamlStillClassifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	files := fstest.MapFS{
		"broken/pubspec.yaml": &fstest.MapFile{Data: []byte("[unclosed\nsdk: flutter\n")},
	}
	scanner := workspace.NewScanner(mockLogger, fs.NewMapFSAdapter("/ws", files))

	pkgs, err := scanner.Scan(testWorkspace())
	require.NoError(t, err)

	require.Len(t, pkgs, 1)
	assert.Equal(t, domain.ToolchainFlutter, pkgs[0].Toolchain, "toolchain detection is a raw substring match")
	assert.Empty(t, pkgs[0].Manifest.Name)
}
