// Package config loads and validates the server configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/averycrespi/semantic-movement-mcp/internal/logging"
	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the workspace root when no config path is given.
const DefaultFileName = ".semantic-movement.yaml"

// Overrides are command line values that take precedence over the config file.
type Overrides struct {
	WorkspaceRoot string
	LogLevel      string
	LogFormat     string
}

// Default returns the built-in configuration: gopls for Go files.
func Default() *types.Config {
	return &types.Config{
		WorkspaceRoot: ".",
		LogLevel:      "info",
		LogFormat:     "text",
		Servers: []types.LanguageServerConfig{
			{
				Name:       "gopls",
				Command:    "gopls",
				Args:       []string{"serve"},
				LanguageID: "go",
				Patterns:   []string{"**/*.go"},
			},
		},
	}
}

// Load builds the effective configuration. An explicit path must exist; without one, the
// default file in the workspace root is used when present.
func Load(path string, overrides Overrides) (*types.Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		root := overrides.WorkspaceRoot
		if root == "" {
			root = cfg.WorkspaceRoot
		}
		path = filepath.Join(root, DefaultFileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if len(cfg.Servers) == 0 {
			cfg.Servers = Default().Servers
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyOverrides(cfg, overrides)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyOverrides(cfg *types.Config, overrides Overrides) {
	if overrides.WorkspaceRoot != "" {
		cfg.WorkspaceRoot = overrides.WorkspaceRoot
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.LogFormat != "" {
		cfg.LogFormat = overrides.LogFormat
	}
}

// Validate checks the configuration and makes the workspace root absolute.
func Validate(cfg *types.Config) error {
	if cfg.WorkspaceRoot == "" {
		return fmt.Errorf("workspace root is required")
	}
	stat, err := os.Stat(cfg.WorkspaceRoot)
	if err != nil || !stat.IsDir() {
		return fmt.Errorf("invalid workspace root: %s", cfg.WorkspaceRoot)
	}
	absPath, err := filepath.Abs(cfg.WorkspaceRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace root: %w", err)
	}
	cfg.WorkspaceRoot = absPath

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.LogFormat != "" && cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("unknown log format: %s", cfg.LogFormat)
	}

	if len(cfg.Servers) == 0 {
		return fmt.Errorf("at least one language server is required")
	}
	seen := make(map[string]bool)
	for i, server := range cfg.Servers {
		if server.Name == "" {
			return fmt.Errorf("server %d: name is required", i)
		}
		if seen[server.Name] {
			return fmt.Errorf("server %s: duplicate name", server.Name)
		}
		seen[server.Name] = true

		if server.Command == "" {
			return fmt.Errorf("server %s: command is required", server.Name)
		}
		if len(server.Patterns) == 0 {
			return fmt.Errorf("server %s: at least one pattern is required", server.Name)
		}
		for _, pattern := range server.Patterns {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("server %s: invalid pattern %q", server.Name, pattern)
			}
		}
	}

	return nil
}
