package auditor

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/pubaudit/pubaudit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Auditor drives the audit loop: fetch dependencies, then analyze, for every
// package in the workspace, strictly one package at a time.
type Auditor struct {
	runner ports.CommandRunner
	tracer ports.Tracer
	stdout io.Writer
	stderr io.Writer
}

// NewAuditor creates a new Auditor. Command output is forwarded to the given
// writers; nil writers default to the process streams.
func NewAuditor(runner ports.CommandRunner, tracer ports.Tracer, stdout, stderr io.Writer) *Auditor {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Auditor{
		runner: runner,
		tracer: tracer,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run audits the packages in the order given, blocking on each external
// command. Analysis failures are collected into the returned report and do not
// stop the loop; a command that cannot be spawned or a cancelled context
// aborts the run immediately.
func (a *Auditor) Run(ctx context.Context, ws domain.Workspace, packages []domain.Package) (*domain.Report, error) {
	report := &domain.Report{}

	for _, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := a.auditPackage(ctx, ws, pkg, report); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to audit package"), "package", pkg.Name)
		}
	}

	return report, nil
}

// auditPackage runs both steps for one package inside its span. The span's
// attributes identify it to the telemetry bridge, which turns its start and
// end into the per-package progress lines.
func (a *Auditor) auditPackage(ctx context.Context, ws domain.Workspace, pkg domain.Package, report *domain.Report) error {
	ctx, span := a.tracer.Start(ctx, "package "+pkg.Name,
		ports.WithAttribute(ports.SpanAttrPackage, pkg.Name),
		ports.WithAttribute(ports.SpanAttrToolchain, pkg.Toolchain.String()),
	)
	defer span.End()

	if err := a.fetch(ctx, pkg, ws.Tools); err != nil {
		span.RecordError(err)
		return err
	}

	err := a.analyze(ctx, pkg, ws)
	switch {
	case err == nil:
		report.RecordPass()
		return nil
	case errors.Is(err, domain.ErrCommandFailed):
		span.RecordError(err)
		report.RecordFailure(pkg.Name)
		return nil
	default:
		span.RecordError(err)
		return err
	}
}

// fetch runs the toolchain-selected dependency-fetch command. Its exit status
// carries no signal for the audit verdict, so a run that completed with a
// non-zero exit is discarded; a command that never ran still propagates.
func (a *Auditor) fetch(ctx context.Context, pkg domain.Package, tools domain.ToolPaths) error {
	cmd := domain.FetchCommand(pkg, tools)

	ctx, span := a.tracer.Start(ctx, cmd.String())
	defer span.End()

	err := a.runner.Run(ctx, cmd, a.stdout, a.stderr)
	if err == nil || errors.Is(err, domain.ErrCommandFailed) {
		return nil
	}

	span.RecordError(err)
	return err
}

// analyze runs the analyzer and returns its verdict as an error: nil for a
// clean package, ErrCommandFailed when the analyzer found problems, anything
// else for an environment fault.
func (a *Auditor) analyze(ctx context.Context, pkg domain.Package, ws domain.Workspace) error {
	cmd := domain.AnalyzeCommand(pkg, ws.Tools, ws.FailLevel)

	ctx, span := a.tracer.Start(ctx, cmd.String())
	defer span.End()

	err := a.runner.Run(ctx, cmd, a.stdout, a.stderr)
	if err != nil {
		span.RecordError(err)
	}
	return err
}
