package domain_test

import (
	"testing"

	"github.com/pubaudit/pubaudit/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectToolchain(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     domain.Toolchain
	}{
		{
			name:     "Plain Dart package",
			manifest: "name: tool_core\nenvironment:\n  sdk: ^3.4.0\n",
			want:     domain.ToolchainDart,
		},
		{
			name:     "Flutter SDK dependency",
			manifest: "name: tool_ui\ndependencies:\n  flutter:\n    sdk: flutter\n",
			want:     domain.ToolchainFlutter,
		},
		{
			name:     "Marker in dev dependencies",
			manifest: "name: tool_test\ndev_dependencies:\n  flutter_test:\n    sdk: flutter\n",
			want:     domain.ToolchainFlutter,
		},
		{
			// Detection is a substring match on the raw bytes, so any
			// occurrence counts, even outside a dependency block.
			name:     "Marker in description",
			manifest: "name: docs\ndescription: mentions sdk: flutter in passing\n",
			want:     domain.ToolchainFlutter,
		},
		{
			name:     "Different spacing is not a match",
			manifest: "dependencies:\n  flutter:\n    sdk:  flutter\n",
			want:     domain.ToolchainDart,
		},
		{
			name:     "Empty manifest",
			manifest: "",
			want:     domain.ToolchainDart,
		},
		{
			name:     "Unparseable contents still classify",
			manifest: ":::: not yaml at all {{{",
			want:     domain.ToolchainDart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DetectToolchain([]byte(tt.manifest))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToolchain_IsFlutter(t *testing.T) {
	assert.True(t, domain.ToolchainFlutter.IsFlutter())
	assert.False(t, domain.ToolchainDart.IsFlutter())
}
