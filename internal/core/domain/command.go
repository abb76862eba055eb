package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Command is an external command invocation, resolved and ready to run.
type Command struct {
	// Name is the executable to invoke, looked up on PATH unless it contains
	// a path separator.
	Name string
	// Args are the arguments passed to the executable, not including Name.
	Args []string
	// Dir is the working directory the command runs in.
	Dir string
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ToolPaths holds the executables pubaudit shells out to. Values are
// overridable through configuration so wrapper scripts and pinned SDK
// checkouts can be substituted for the PATH defaults.
type ToolPaths struct {
	Dart    string
	Flutter string
}

// DefaultToolPaths returns the standard PATH-resolved tool names.
func DefaultToolPaths() ToolPaths {
	return ToolPaths{Dart: "dart", Flutter: "flutter"}
}

// FailLevel is the analyzer diagnostic severity that fails a package.
type FailLevel string

const (
	// FailLevelInfo fails a package on any diagnostic, infos included.
	FailLevelInfo FailLevel = "info"
	// FailLevelWarning fails a package on warnings and errors.
	FailLevelWarning FailLevel = "warning"
	// FailLevelError fails a package on errors only.
	FailLevelError FailLevel = "error"
)

// ParseFailLevel validates a fail-level string from configuration or flags.
func ParseFailLevel(s string) (FailLevel, error) {
	switch FailLevel(s) {
	case FailLevelInfo, FailLevelWarning, FailLevelError:
		return FailLevel(s), nil
	}
	return "", zerr.With(ErrInvalidFailLevel, "value", s)
}

// analyzerFlag maps a fail level onto the dart analyze flag that promotes
// diagnostics of that severity to a non-zero exit.
func (l FailLevel) analyzerFlag() string {
	switch l {
	case FailLevelWarning:
		return "--fatal-warnings"
	case FailLevelError:
		return "" // errors are fatal by default
	default:
		return "--fatal-infos"
	}
}

// FetchCommand builds the dependency-fetch invocation for a package. Flutter
// packages fetch through the flutter tool, everything else through dart.
func FetchCommand(pkg Package, tools ToolPaths) Command {
	name := tools.Dart
	if pkg.Toolchain.IsFlutter() {
		name = tools.Flutter
	}
	return Command{
		Name: name,
		Args: []string{"pub", "get"},
		Dir:  pkg.Dir,
	}
}

// AnalyzeCommand builds the static-analysis invocation for a package. The
// analyzer always runs through the dart tool regardless of toolchain.
func AnalyzeCommand(pkg Package, tools ToolPaths, level FailLevel) Command {
	args := []string{"analyze"}
	if flag := level.analyzerFlag(); flag != "" {
		args = append(args, flag)
	}
	return Command{
		Name: tools.Dart,
		Args: args,
		Dir:  pkg.Dir,
	}
}
