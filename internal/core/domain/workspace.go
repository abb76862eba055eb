package domain

import "slices"

// ConfigFileName is the optional config file looked up at the workspace root.
const ConfigFileName = "pubaudit.yaml"

// Workspace is the resolved audit configuration: where to look for packages,
// what to skip, which executables to use and how strict the analyzer is.
type Workspace struct {
	// Root is the absolute path of the workspace, i.e. the directory holding
	// the config file (or the directory named on the command line).
	Root string
	// PackagesDir is the absolute path of the directory whose immediate
	// subdirectories are candidate packages.
	PackagesDir string
	// Excludes lists directory names that are skipped even if they contain a
	// manifest.
	Excludes []string
	// Tools holds the executables shelled out to.
	Tools ToolPaths
	// FailLevel is the analyzer severity that fails a package.
	FailLevel FailLevel
}

// Excluded reports whether a directory name is on the exclude list.
func (w Workspace) Excluded(name string) bool {
	return slices.Contains(w.Excludes, name)
}
