// Package console renders audit progress as plain, ordered lines on stdout.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/pubaudit/pubaudit/internal/ui/style"
)

// Reporter implements ports.Reporter for sequential audit runs. It prints a
// progress header before each package, a completion line after it, and the
// final summary, everything in visit order.
type Reporter struct {
	stdout io.Writer
	output *termenv.Output

	mu       sync.Mutex
	packages map[string]*packageState // spanID -> package state
}

type packageState struct {
	name      string
	startTime time.Time
}

// NewReporter creates a new Reporter writing to stdout with the given color
// profile.
func NewReporter(stdout io.Writer, profile termenv.Profile) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Reporter{
		stdout:   stdout,
		output:   termenv.NewOutput(stdout, termenv.WithProfile(profile)),
		packages: make(map[string]*packageState),
	}
}

// OnPackageStart prints the progress header for a package.
func (r *Reporter) OnPackageStart(spanID, name string, toolchain domain.Toolchain, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.packages[spanID] = &packageState{
		name:      name,
		startTime: startTime,
	}

	header := fmt.Sprintf("--- Analyzing %s ---", name)
	if toolchain.IsFlutter() {
		header = fmt.Sprintf("--- Analyzing %s (flutter) ---", name)
	}

	styled := r.output.String(header).Bold().String()
	_, _ = fmt.Fprintf(r.stdout, "\n%s\n", styled)
}

// OnPackageComplete prints the completion line for a package.
func (r *Reporter) OnPackageComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.packages[spanID]
	if !ok {
		return
	}

	duration := endTime.Sub(state.startTime).Round(time.Millisecond)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.stdout, "%s %s failed after %v\n", symbol, state.name, duration)
	} else {
		symbol := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
		_, _ = fmt.Fprintf(r.stdout, "%s %s passed in %v\n", symbol, state.name, duration)
	}

	delete(r.packages, spanID)
}

// Summary prints the final result line derived from the report.
func (r *Reporter) Summary(report *domain.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var styled string
	if report.Failed() {
		line := "Failed packages: " + strings.Join(report.Failures(), ", ")
		styled = r.output.String(line).Foreground(termenv.RGBColor(string(style.Red))).String()
	} else {
		line := "All packages passed analysis."
		styled = r.output.String(line).Foreground(termenv.RGBColor(string(style.Green))).String()
	}

	_, _ = fmt.Fprintf(r.stdout, "\n%s\n", styled)
}
