// Package domain contains the core types of the pubaudit tool.
package domain

import "bytes"

// ManifestFileName is the file whose presence marks a directory as a package.
const ManifestFileName = "pubspec.yaml"

// flutterMarker is the manifest substring that selects the Flutter toolchain.
const flutterMarker = "sdk: flutter"

// Toolchain selects which dependency-fetch command variant a package uses.
type Toolchain string

const (
	// ToolchainDart is the standard toolchain (dart pub get).
	ToolchainDart Toolchain = "dart"
	// ToolchainFlutter is the alternate toolchain (flutter pub get), selected
	// when the manifest declares a Flutter SDK dependency.
	ToolchainFlutter Toolchain = "flutter"
)

// String returns the toolchain name.
func (t Toolchain) String() string {
	return string(t)
}

// IsFlutter reports whether the package uses the Flutter toolchain.
func (t Toolchain) IsFlutter() bool {
	return t == ToolchainFlutter
}

// DetectToolchain classifies manifest contents by toolchain. The manifest is
// treated as plain text: the presence of the literal `sdk: flutter` substring
// anywhere in it selects the Flutter toolchain. Pure function, no side effects.
func DetectToolchain(contents []byte) Toolchain {
	if bytes.Contains(contents, []byte(flutterMarker)) {
		return ToolchainFlutter
	}
	return ToolchainDart
}

// Manifest holds the metadata parsed from a package's pubspec.yaml. The fields
// are informational (used by the list command); toolchain detection never
// depends on them, so a manifest that fails to parse leaves them empty.
type Manifest struct {
	Name        string
	Version     string
	Description string
}

// Package describes one analyzable package discovered in the workspace.
type Package struct {
	// Name is the package's directory name, which identifies it in progress
	// output and in the failure report.
	Name string
	// Dir is the absolute path of the package directory. External commands run
	// with Dir as their working directory.
	Dir string
	// Toolchain selects the dependency-fetch command variant.
	Toolchain Toolchain
	// Manifest is the parsed pubspec metadata, possibly zero.
	Manifest Manifest
}
