package auditor_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/pubaudit/pubaudit/internal/core/ports"
	"github.com/pubaudit/pubaudit/internal/core/ports/mocks"
	"github.com/pubaudit/pubaudit/internal/engine/auditor"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type auditorTestMocks struct {
	runner *mocks.MockCommandRunner
	tracer *mocks.MockTracer
	span   *mocks.MockSpan
}

// setupAuditorTest creates an auditor with optimistic tracer mocks so tests
// only spell out runner expectations.
func setupAuditorTest(t *testing.T) (*auditor.Auditor, auditorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := auditorTestMocks{
		runner: mocks.NewMockCommandRunner(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
		span:   mocks.NewMockSpan(ctrl),
	}

	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	// Start has variadic signature: Start(ctx, name, ...opts).
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()

	a := auditor.NewAuditor(m.runner, m.tracer, io.Discard, io.Discard)
	return a, m
}

// commandMatcher implements gomock.Matcher for domain.Command.
type commandMatcher struct {
	line string
	dir  string
}

func (m commandMatcher) Matches(x interface{}) bool {
	cmd, ok := x.(domain.Command)
	if !ok {
		return false
	}
	return cmd.String() == m.line && cmd.Dir == m.dir
}

func (m commandMatcher) String() string {
	return fmt.Sprintf("command %q in %q", m.line, m.dir)
}

func matchCommand(line, dir string) gomock.Matcher {
	return commandMatcher{line: line, dir: dir}
}

func testWorkspace() domain.Workspace {
	return domain.Workspace{
		Root:        "/ws",
		PackagesDir: "/ws/packages",
		Tools:       domain.DefaultToolPaths(),
		FailLevel:   domain.FailLevelInfo,
	}
}

func dartPackage(name string) domain.Package {
	return domain.Package{
		Name:      name,
		Dir:       "/ws/packages/" + name,
		Toolchain: domain.ToolchainDart,
	}
}

func flutterPackage(name string) domain.Package {
	pkg := dartPackage(name)
	pkg.Toolchain = domain.ToolchainFlutter
	return pkg
}

func TestAuditor_PassAndFail(t *testing.T) {
	// alpha passes analysis, beta does not. Each package is fetched before it
	// is analyzed, and beta only starts once alpha is done.
	a, m := setupAuditorTest(t)
	ws := testWorkspace()
	alpha := dartPackage("alpha")
	beta := dartPackage("beta")

	analysisErr := errors.Join(domain.ErrCommandFailed, errors.New("exit status 3"))

	alphaFetch := m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart pub get", alpha.Dir), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1)

	alphaAnalyze := m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart analyze --fatal-infos", alpha.Dir), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1).After(alphaFetch)

	betaFetch := m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart pub get", beta.Dir), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1).After(alphaAnalyze)

	m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart analyze --fatal-infos", beta.Dir), gomock.Any(), gomock.Any(),
	).Return(analysisErr).Times(1).After(betaFetch)

	report, err := a.Run(context.Background(), ws, []domain.Package{alpha, beta})
	require.NoError(t, err)
	require.Equal(t, 2, report.Audited())
	require.True(t, report.Failed())
	require.Equal(t, []string{"beta"}, report.Failures())
}

func TestAuditor_FlutterFetch(t *testing.T) {
	// A Flutter package fetches through the flutter tool but is still
	// analyzed through dart.
	a, m := setupAuditorTest(t)
	ws := testWorkspace()
	pkg := flutterPackage("mobile_app")

	fetch := m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("flutter pub get", pkg.Dir), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1)

	m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart analyze --fatal-infos", pkg.Dir), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1).After(fetch)

	report, err := a.Run(context.Background(), ws, []domain.Package{pkg})
	require.NoError(t, err)
	require.False(t, report.Failed())
	require.Equal(t, 1, report.Audited())
}

func TestAuditor_ConfiguredTools(t *testing.T) {
	// Tool paths from the workspace replace the PATH defaults.
	a, m := setupAuditorTest(t)
	ws := testWorkspace()
	ws.Tools = domain.ToolPaths{Dart: "/opt/dart-sdk/bin/dart", Flutter: "/opt/flutter/bin/flutter"}
	ws.FailLevel = domain.FailLevelWarning
	pkg := dartPackage("alpha")

	fetch := m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("/opt/dart-sdk/bin/dart pub get", pkg.Dir), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1)

	m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("/opt/dart-sdk/bin/dart analyze --fatal-warnings", pkg.Dir), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1).After(fetch)

	report, err := a.Run(context.Background(), ws, []domain.Package{pkg})
	require.NoError(t, err)
	require.False(t, report.Failed())
}

func TestAuditor_FetchExitIgnored(t *testing.T) {
	// A fetch that runs and exits non-zero carries no verdict: analysis still
	// runs and decides the outcome.
	a, m := setupAuditorTest(t)
	ws := testWorkspace()
	pkg := dartPackage("alpha")

	fetchErr := errors.Join(domain.ErrCommandFailed, errors.New("exit status 69"))

	fetch := m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart pub get", pkg.Dir), gomock.Any(), gomock.Any(),
	).Return(fetchErr).Times(1)

	m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart analyze --fatal-infos", pkg.Dir), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1).After(fetch)

	report, err := a.Run(context.Background(), ws, []domain.Package{pkg})
	require.NoError(t, err)
	require.False(t, report.Failed())
	require.Equal(t, 1, report.Audited())
}

func TestAuditor_EmptyWorkspace(t *testing.T) {
	// No packages, no commands.
	a, m := setupAuditorTest(t)

	m.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := a.Run(context.Background(), testWorkspace(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, report.Audited())
	require.False(t, report.Failed())
	require.Empty(t, report.Failures())
}

func TestAuditor_FailureOrder(t *testing.T) {
	// Failed package names keep visit order in the report.
	a, m := setupAuditorTest(t)
	ws := testWorkspace()
	packages := []domain.Package{dartPackage("alpha"), dartPackage("bravo"), dartPackage("charlie")}

	analysisErr := errors.Join(domain.ErrCommandFailed, errors.New("exit status 3"))

	for _, pkg := range packages {
		m.runner.EXPECT().Run(
			gomock.Any(), matchCommand("dart pub get", pkg.Dir), gomock.Any(), gomock.Any(),
		).Return(nil).Times(1)
	}
	m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart analyze --fatal-infos", "/ws/packages/alpha"), gomock.Any(), gomock.Any(),
	).Return(analysisErr).Times(1)
	m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart analyze --fatal-infos", "/ws/packages/bravo"), gomock.Any(), gomock.Any(),
	).Return(nil).Times(1)
	m.runner.EXPECT().Run(
		gomock.Any(), matchCommand("dart analyze --fatal-infos", "/ws/packages/charlie"), gomock.Any(), gomock.Any(),
	).Return(analysisErr).Times(1)

	report, err := a.Run(context.Background(), ws, packages)
	require.NoError(t, err)
	require.Equal(t, 3, report.Audited())
	require.Equal(t, []string{"alpha", "charlie"}, report.Failures())
}
