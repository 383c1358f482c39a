// Package config loads filetags settings and tag definitions from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/filetags/internal/logger"
	"github.com/harrison/filetags/internal/registry"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in a base directory.
const FileName = ".filetags.yaml"

// StringList accepts either a single YAML string or a sequence of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*s = StringList{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = StringList(many)
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

// TagConfig declares one tag to populate at startup.
type TagConfig struct {
	// Name is the tag name
	Name string `yaml:"name"`

	// Patterns are glob patterns matched against filenames
	Patterns StringList `yaml:"patterns"`

	// Include keeps paths containing every listed substring
	Include StringList `yaml:"include"`

	// Exclude drops paths containing any listed substring
	Exclude StringList `yaml:"exclude"`

	// ExcludeHidden overrides the global hidden-file policy for this tag only
	ExcludeHidden *bool `yaml:"exclude_hidden"`
}

// Config represents filetags configuration options
type Config struct {
	// Dir is the base directory to search
	Dir string `yaml:"dir"`

	// ExcludeHidden drops files whose names start with "." or "~$"
	ExcludeHidden bool `yaml:"exclude_hidden"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Units is the default report unit (B, KB, MB, GB, TB)
	Units string `yaml:"units"`

	// Tags are populated in order when a registry is built
	Tags []TagConfig `yaml:"tags"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Dir:           ".",
		ExcludeHidden: true,
		LogLevel:      "warn",
		Units:         "MB",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
// A relative dir in the file is taken relative to the file's directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from zero values so defaults survive.
	type yamlConfig struct {
		Dir           *string     `yaml:"dir"`
		ExcludeHidden *bool       `yaml:"exclude_hidden"`
		LogLevel      string      `yaml:"log_level"`
		Units         string      `yaml:"units"`
		Tags          []TagConfig `yaml:"tags"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.Dir != nil && *yamlCfg.Dir != "" {
		cfg.Dir = *yamlCfg.Dir
		if !filepath.IsAbs(cfg.Dir) {
			cfg.Dir = filepath.Join(filepath.Dir(path), cfg.Dir)
		}
	}
	if yamlCfg.ExcludeHidden != nil {
		cfg.ExcludeHidden = *yamlCfg.ExcludeHidden
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Units != "" {
		cfg.Units = yamlCfg.Units
	}
	cfg.Tags = yamlCfg.Tags

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .filetags.yaml in the specified directory.
// If the file doesn't exist, returns default configuration with Dir set to dir.
func LoadConfigFromDir(dir string) (*Config, error) {
	cfg, err := LoadConfig(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	if cfg.Dir == "." {
		cfg.Dir = dir
	}
	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(dir *string, logLevel *string, excludeHidden *bool, units *string) {
	if dir != nil {
		c.Dir = *dir
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if excludeHidden != nil {
		c.ExcludeHidden = *excludeHidden
	}
	if units != nil {
		c.Units = *units
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	validUnit := false
	for _, u := range registry.Units {
		if c.Units == u {
			validUnit = true
			break
		}
	}
	if !validUnit {
		return fmt.Errorf("invalid units %q, must be one of: %v", c.Units, registry.Units)
	}

	seen := make(map[string]bool)
	for i, tag := range c.Tags {
		if tag.Name == "" {
			return fmt.Errorf("tags[%d]: name cannot be empty", i)
		}
		if seen[tag.Name] {
			return fmt.Errorf("tags[%d]: duplicate tag %q", i, tag.Name)
		}
		seen[tag.Name] = true
		if len(tag.Patterns) == 0 {
			return fmt.Errorf("tag %q: at least one pattern is required", tag.Name)
		}
	}

	return nil
}

// Apply populates reg with every configured tag, in order.
// With no tags configured the default "all" tag is populated instead.
func (c *Config) Apply(reg *registry.Registry) error {
	if len(c.Tags) == 0 {
		_, err := reg.AddAll("")
		return err
	}

	for _, tag := range c.Tags {
		var opts []registry.AddOption
		if len(tag.Include) > 0 {
			opts = append(opts, registry.Include(tag.Include...))
		}
		if len(tag.Exclude) > 0 {
			opts = append(opts, registry.Exclude(tag.Exclude...))
		}
		if tag.ExcludeHidden != nil {
			opts = append(opts, registry.ExcludeHidden(*tag.ExcludeHidden))
		}
		if _, err := reg.AddTagged(tag.Name, tag.Patterns, opts...); err != nil {
			return fmt.Errorf("tag %q: %w", tag.Name, err)
		}
	}
	return nil
}
