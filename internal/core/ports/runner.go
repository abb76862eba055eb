// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/pubaudit/pubaudit/internal/core/domain"
)

// CommandRunner defines the interface for running external commands.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command and blocks until it exits, streaming its
	// output to the given writers.
	//
	// A non-zero exit is reported as domain.ErrCommandFailed. A command that
	// cannot be started at all is reported as domain.ErrCommandStart, so
	// callers can distinguish "ran and failed" from "never ran".
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
