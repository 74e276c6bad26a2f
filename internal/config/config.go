// Package config holds the tool configuration, stored as YAML under the
// user config directory.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the persisted tool configuration. Zero values fall back to the
// defaults below, so a partial file is fine.
type Config struct {
	// ProjectsRoot is the directory holding one subdirectory per project.
	// Empty means the current working directory.
	ProjectsRoot string `yaml:"projects_root,omitempty"`
	// Compiler is the HDL compiler executable.
	Compiler string `yaml:"compiler,omitempty"`
	// Simulator is the simulation runtime that produces the trace file.
	Simulator string `yaml:"simulator,omitempty"`
	// Viewer is the waveform viewer executable.
	Viewer string `yaml:"viewer,omitempty"`
	// Editor overrides $EDITOR and the detection chain when set.
	Editor string `yaml:"editor,omitempty"`
	// Theme selects the markdown render theme: auto, dark, or light.
	Theme string `yaml:"theme,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Compiler:  "iverilog",
		Simulator: "vvp",
		Viewer:    "gtkwave",
		Theme:     "auto",
	}
}

// DefaultPath returns the location of the config file under the user config
// directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "hdlbench", "config.yaml")
}

// EventLogPath returns the location of the NDJSON session event log.
func EventLogPath() string {
	return filepath.Join(filepath.Dir(DefaultPath()), "events.ndjson")
}

// Load reads the config at path. A missing or unreadable file yields the
// defaults; only keys present in the file override them.
func Load(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg
	}
	if file.ProjectsRoot != "" {
		cfg.ProjectsRoot = file.ProjectsRoot
	}
	if file.Compiler != "" {
		cfg.Compiler = file.Compiler
	}
	if file.Simulator != "" {
		cfg.Simulator = file.Simulator
	}
	if file.Viewer != "" {
		cfg.Viewer = file.Viewer
	}
	if file.Editor != "" {
		cfg.Editor = file.Editor
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	return cfg
}

// Save writes the config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ResolveRoot applies the projects-root precedence: explicit flag value,
// then the configured root, then the current working directory.
func ResolveRoot(flagRoot string, cfg Config) (string, error) {
	if flagRoot != "" {
		return filepath.Abs(flagRoot)
	}
	if cfg.ProjectsRoot != "" {
		return filepath.Abs(cfg.ProjectsRoot)
	}
	return os.Getwd()
}
