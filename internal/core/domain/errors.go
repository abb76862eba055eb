package domain

import "go.trai.ch/zerr"

var (
	// ErrAuditFailed is returned when at least one package fails analysis. The
	// failure report has already been printed, so callers translate this into
	// a non-zero exit without further output.
	ErrAuditFailed = zerr.New("audit failed")

	// ErrCommandFailed is returned when an external command runs to completion
	// but exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandStart is returned when an external command cannot be started
	// at all, typically because the executable is missing from PATH.
	ErrCommandStart = zerr.New("failed to start command")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares a
	// schema version this build does not understand.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version, expected 1")

	// ErrInvalidFailLevel is returned when a fail level is invalid, expected
	// 'info', 'warning' or 'error'.
	ErrInvalidFailLevel = zerr.New("invalid fail level, expected 'info', 'warning' or 'error'")

	// ErrWorkspaceNotFound is returned when the packages directory does not
	// exist or is not a directory.
	ErrWorkspaceNotFound = zerr.New("packages directory not found")

	// ErrWorkspaceScanFailed is returned when the packages directory cannot be
	// listed.
	ErrWorkspaceScanFailed = zerr.New("failed to scan packages directory")

	// ErrManifestReadFailed is returned when a package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrFailedToGetRoot is returned when the workspace root path cannot be
	// resolved to an absolute path.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of workspace root")
)
