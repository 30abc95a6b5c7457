package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Discovery candidates, checked in order in a directory.
//
//nolint:gochecknoglobals // Static discovery table.
var configFileNames = []string{
	".booklint.yml",
	".booklint.yaml",
	".booklint.toml",
	".booklint.json",
	"booklint.yml",
	"booklint.toml",
}

// FromYAML decodes a Config from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml config: %w", err)
	}
	return normalize(cfg)
}

// FromTOML decodes a Config from TOML bytes.
func FromTOML(data []byte) (*Config, error) {
	cfg := New()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse toml config: %w", err)
	}
	return normalize(cfg)
}

// FromJSON decodes a Config from JSON bytes.
func FromJSON(data []byte) (*Config, error) {
	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse json config: %w", err)
	}
	return normalize(cfg)
}

// Load reads and decodes a config file, selecting the codec by extension.
// Unrecognized extensions fall back to YAML, which covers extensionless
// dotfiles.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FromTOML(data)
	case ".json":
		return FromJSON(data)
	default:
		return FromYAML(data)
	}
}

// Discover searches dir and its ancestors for a config file and loads the
// first one found. It returns (nil, nil) when no config file exists.
func Discover(dir string) (*Config, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(abs, name)
			if _, err := os.Stat(candidate); err == nil {
				cfg, err := Load(candidate)
				if err != nil {
					return nil, candidate, err
				}
				return cfg, candidate, nil
			}
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, "", nil
		}
		abs = parent
	}
}

// normalize applies defaults and validates decoder-independent structure.
func normalize(cfg *Config) (*Config, error) {
	if cfg.Policy == "" {
		cfg.Policy = PolicyEnableAll
	}
	if !cfg.Policy.IsValid() {
		return nil, fmt.Errorf("unknown policy %q (want %q or %q)",
			cfg.Policy, PolicyEnableAll, PolicyEnableNone)
	}
	if cfg.Checks == nil {
		cfg.Checks = make(map[string]CheckConfig)
	}
	for id, cc := range cfg.Checks {
		if cc.Severity == nil {
			continue
		}
		switch *cc.Severity {
		case "error", "warning", "info":
		default:
			return nil, fmt.Errorf("check %s: unknown severity %q", id, *cc.Severity)
		}
	}
	return cfg, nil
}

// ToYAML serializes the persistable portion of a Config.
func (c *Config) ToYAML() ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return []byte(sb.String()), nil
}
