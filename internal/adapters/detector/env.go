// Package detector provides environment detection for console color selection.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode represents the coloring behavior for console output.
type ColorMode int

const (
	// ColorAuto defers to environment detection.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables colored output.
	ColorNever
)

// DetectEnvironment returns the recommended color mode based on the environment.
// It checks if stdout is a TTY and if NO_COLOR or CI environment variables are set.
func DetectEnvironment() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ColorNever
	}
	return ColorAlways
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "always", "never", or empty.
// An explicit "always" wins over NO_COLOR and CI detection.
func ResolveMode(autoDetected ColorMode, userFlag string) ColorMode {
	switch userFlag {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	case "auto", "":
		return autoDetected
	default:
		return autoDetected
	}
}

// Profile maps a resolved color mode to a termenv profile.
func Profile(mode ColorMode) termenv.Profile {
	if mode == ColorNever {
		return termenv.Ascii
	}
	return termenv.ANSI
}
