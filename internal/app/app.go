// Package app implements the application layer for pubaudit.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/pubaudit/pubaudit/internal/adapters/console"
	"github.com/pubaudit/pubaudit/internal/adapters/detector"
	"github.com/pubaudit/pubaudit/internal/adapters/telemetry"
	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/pubaudit/pubaudit/internal/core/ports"
	"github.com/pubaudit/pubaudit/internal/engine/auditor"
	"github.com/pubaudit/pubaudit/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.WorkspaceScanner
	runner       ports.CommandRunner
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.WorkspaceScanner,
	runner ports.CommandRunner,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		runner:       runner,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects the progress and command output streams.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// AuditOptions configuration for the Audit method.
type AuditOptions struct {
	// Root is the workspace directory; empty means the current directory.
	Root string
	// PackagesDir overrides the configured packages directory when non-empty.
	PackagesDir string
	// Exclude adds directory names to skip, merged with the config.
	Exclude []string
	// FailLevel overrides the configured analyzer severity when non-empty.
	FailLevel string
	// Color selects console coloring: auto, always or never.
	Color string
}

// Audit runs the full audit: fetch and analyze every package, print the
// summary and report the verdict. A workspace with failing packages returns
// domain.ErrAuditFailed; that error means the failure report has already been
// printed.
func (a *App) Audit(ctx context.Context, opts AuditOptions) error {
	// 1. Resolve configuration and discover packages
	ws, packages, err := a.loadWorkspace(opts.Root, opts.PackagesDir, opts.Exclude, opts.FailLevel)
	if err != nil {
		return err
	}

	// 2. Initialize the console reporter
	// Detect environment and resolve the color mode
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.Color)
	reporter := console.NewReporter(a.stdout, detector.Profile(mode))

	// 3. Initialize telemetry
	// Package spans reach the reporter through the span-processor bridge.
	tp, tracer := telemetry.NewProvider(reporter)
	defer func() {
		_ = tp.Shutdown(ctx)
	}()

	// 4. Run the audit loop
	report, err := auditor.NewAuditor(a.runner, tracer, a.stdout, a.stderr).Run(ctx, *ws, packages)
	if err != nil {
		return err
	}

	// 5. Summarize
	reporter.Summary(report)
	if report.Failed() {
		return domain.ErrAuditFailed
	}
	return nil
}

// ListOptions configuration for the List method.
type ListOptions struct {
	// Root is the workspace directory; empty means the current directory.
	Root string
	// PackagesDir overrides the configured packages directory when non-empty.
	PackagesDir string
	// Exclude adds directory names to skip, merged with the config.
	Exclude []string
}

// List discovers the workspace's packages and prints one row per package
// without invoking any external command.
func (a *App) List(_ context.Context, opts ListOptions) error {
	ws, packages, err := a.loadWorkspace(opts.Root, opts.PackagesDir, opts.Exclude, "")
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, style.Heading("Packages in "+ws.PackagesDir))
	fmt.Fprintln(a.stdout)

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tVERSION\tTOOLCHAIN\n")
	for _, pkg := range packages {
		version := pkg.Manifest.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", pkg.Name, version, pkg.Toolchain)
	}
	_ = tw.Flush()
	fmt.Fprintf(a.stdout, "\n%d packages\n", len(packages))

	return nil
}

// loadWorkspace loads the configuration, applies the flag overrides and scans
// the packages directory.
func (a *App) loadWorkspace(root, packagesDir string, exclude []string, failLevel string) (*domain.Workspace, []domain.Package, error) {
	if root == "" {
		root = "."
	}

	ws, err := a.configLoader.Load(root)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	if packagesDir != "" {
		ws.PackagesDir = resolveDir(ws.Root, packagesDir)
	}
	ws.Excludes = append(ws.Excludes, exclude...)
	if failLevel != "" {
		level, err := domain.ParseFailLevel(failLevel)
		if err != nil {
			return nil, nil, err
		}
		ws.FailLevel = level
	}

	packages, err := a.scanner.Scan(*ws)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to scan workspace")
	}

	return ws, packages, nil
}

// resolveDir resolves a directory flag against the workspace root.
func resolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}
