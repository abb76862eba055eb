// Package shell runs external commands for the audit loop.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/pubaudit/pubaudit/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// Runner implements ports.CommandRunner using os/exec and pty.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command in its working directory and blocks until it
// exits. When stdout is an interactive terminal the command runs in a PTY so
// child tools keep their native coloring; otherwise both streams are piped
// through unchanged. The child inherits the full environment, as pub and the
// analyzer rely on HOME, PATH and PUB_CACHE.
func (r *Runner) Run(ctx context.Context, command domain.Command, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gosec // tool paths come from user configuration
	cmd.Dir = command.Dir

	var runErr error
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		runErr = runPTY(cmd, stdout)
	} else {
		runErr = runPiped(cmd, stdout, stderr)
	}

	if runErr == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return zerr.With(
			errors.Join(domain.ErrCommandFailed, runErr),
			"exit_code", exitErr.ExitCode(),
		)
	}

	return zerr.With(
		errors.Join(domain.ErrCommandStart, runErr),
		"command", command.String(),
	)
}

// runPTY runs the command with a pseudo-terminal. The PTY merges the child's
// stdout and stderr into a single stream.
func runPTY(cmd *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Copy returns once the child closes its end of the pty.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	return err
}

// runPiped runs the command with separate stdout/stderr pipes, forwarding
// both streams concurrently.
func runPiped(cmd *exec.Cmd, stdout, stderr io.Writer) error {
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		_, copyErr := io.Copy(stdout, outPipe)
		return copyErr
	})
	g.Go(func() error {
		_, copyErr := io.Copy(stderr, errPipe)
		return copyErr
	})

	// Both pipes must be drained before Wait closes them.
	copyErr := g.Wait()
	if waitErr := cmd.Wait(); waitErr != nil {
		return waitErr
	}
	return copyErr
}
