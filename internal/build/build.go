// Package build holds build-time information.
package build

// Defaults apply to plain `go build`; releases overwrite them with linker
// flags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
