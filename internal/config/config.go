// Package config loads the YAML conversion profile used by csrconvert.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/csrgraph/edgelist"
	"github.com/katalvlaran/csrgraph/internal/logging"
)

// Config represents a complete conversion profile.
type Config struct {
	Parse    ParseConfig    `yaml:"parse"`
	Preview  []int32        `yaml:"preview"`
	Capacity CapacityConfig `yaml:"capacity"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ParseConfig controls edge-list parsing.
type ParseConfig struct {
	Strictness    string `yaml:"strictness"`     // "lenient" or "strict"
	CommentPrefix string `yaml:"comment_prefix"` // default "#"
}

// CapacityConfig bounds the graph the builder may allocate. Zero means no
// limit beyond the int32 index range.
type CapacityConfig struct {
	MaxNodes int64 `yaml:"max_nodes"`
	MaxEdges int64 `yaml:"max_edges"`
}

// LoggingConfig defines the logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"` // Options: "off", "debug", "info", "warn", "error"
}

// Default returns the profile used when no file is given.
func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			Strictness:    edgelist.Lenient.String(),
			CommentPrefix: edgelist.DefaultCommentPrefix,
		},
		Preview: []int32{0, 1},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads a profile from a YAML file. Keys absent from the file
// keep their Default values.
func LoadConfig(configPath string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML over the defaults
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := edgelist.ParseStrictness(c.Parse.Strictness); err != nil {
		return err
	}
	if strings.TrimSpace(c.Parse.CommentPrefix) == "" {
		return fmt.Errorf("comment_prefix must not be blank")
	}

	for _, u := range c.Preview {
		if u < 0 {
			return fmt.Errorf("invalid preview node: %d", u)
		}
	}

	if c.Capacity.MaxNodes < 0 {
		return fmt.Errorf("invalid max_nodes: %d", c.Capacity.MaxNodes)
	}
	if c.Capacity.MaxEdges < 0 {
		return fmt.Errorf("invalid max_edges: %d", c.Capacity.MaxEdges)
	}

	if _, err := logging.New(io.Discard, c.Logging.Level); err != nil {
		return err
	}

	return nil
}

// Strictness returns the parsed strictness. Call after Validate.
func (c *Config) Strictness() edgelist.Strictness {
	s, _ := edgelist.ParseStrictness(c.Parse.Strictness)
	return s
}
