package telemetry

import (
	"context"
	"errors"

	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/pubaudit/pubaudit/internal/core/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Bridge implements sdktrace.SpanProcessor to forward package spans to a
// Reporter. Spans without the package attribute (the fetch and analyze child
// spans) are ignored: their outcome is already part of the package span.
type Bridge struct {
	reporter ports.Reporter
}

// NewBridge returns a new Bridge.
func NewBridge(reporter ports.Reporter) *Bridge {
	return &Bridge{
		reporter: reporter,
	}
}

// OnStart is called synchronously when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.reporter == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	name, toolchain, ok := packageAttributes(s.Attributes())
	if !ok {
		return
	}

	b.reporter.OnPackageStart(
		sc.SpanID().String(),
		name,
		toolchain,
		s.StartTime(),
	)
}

// OnEnd is called synchronously when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.reporter == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	if _, _, ok := packageAttributes(s.Attributes()); !ok {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "analysis failed"
		}
		err = errors.New(desc)
	}

	b.reporter.OnPackageComplete(
		sc.SpanID().String(),
		s.EndTime(),
		err,
	)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// packageAttributes extracts the package name and toolchain attributes. ok is
// false when the span carries no package attribute.
func packageAttributes(attrs []attribute.KeyValue) (string, domain.Toolchain, bool) {
	var name string
	toolchain := domain.ToolchainDart

	for _, attr := range attrs {
		switch attr.Key {
		case ports.SpanAttrPackage:
			name = attr.Value.AsString()
		case ports.SpanAttrToolchain:
			toolchain = domain.Toolchain(attr.Value.AsString())
		}
	}

	return name, toolchain, name != ""
}
