package config

// Config represents the structure of the pubaudit.yaml configuration file.
type Config struct {
	Version     string   `yaml:"version"`
	PackagesDir string   `yaml:"packages_dir"`
	Exclude     []string `yaml:"exclude"`
	FailLevel   string   `yaml:"fail_level"`
	Tools       ToolsDTO `yaml:"tools"`
}

// ToolsDTO holds the configured executable overrides.
type ToolsDTO struct {
	Dart    string `yaml:"dart"`
	Flutter string `yaml:"flutter"`
}
