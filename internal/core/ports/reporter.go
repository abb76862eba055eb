package ports

import (
	"time"

	"github.com/pubaudit/pubaudit/internal/core/domain"
)

// Reporter is the abstraction for audit progress output. It decouples
// telemetry collection from presentation: the span bridge feeds it package
// lifecycle events, the application feeds it the final summary.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnPackageStart is called when a package audit begins.
	// spanID: unique identifier for this package's audit
	// name: the package's directory name
	// toolchain: the package's detected toolchain
	// startTime: when the audit started
	OnPackageStart(spanID, name string, toolchain domain.Toolchain, startTime time.Time)

	// OnPackageComplete is called when a package audit finishes.
	// spanID: identifier for the package's audit
	// endTime: when the audit completed
	// err: nil if the package passed analysis
	OnPackageComplete(spanID string, endTime time.Time, err error)

	// Summary prints the final result line once all packages are audited.
	Summary(report *domain.Report)
}
