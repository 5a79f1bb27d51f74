// Package config loads the handclass HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handshapes/sdk/classification"
	"github.com/lox/handshapes/sdk/evaluator"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = "handclass.hcl"

// Config represents the complete handclass configuration. Every block is
// optional; Load fills in whatever the file leaves out.
type Config struct {
	Classifier *ClassifierSettings `hcl:"classifier,block"`
	Survey     *SurveySettings     `hcl:"survey,block"`
	Output     *OutputSettings     `hcl:"output,block"`
}

// ClassifierSettings picks the evaluator and sizes the outs cache.
type ClassifierSettings struct {
	Evaluator     string `hcl:"evaluator,optional"`
	OutsCacheSize int    `hcl:"outs_cache_size,optional"`
}

// SurveySettings controls the board survey worker pool.
type SurveySettings struct {
	Workers int `hcl:"workers,optional"`
}

// OutputSettings controls logging and styling.
type OutputSettings struct {
	LogLevel string `hcl:"log_level,optional"`
	Color    *bool  `hcl:"color,optional"`
}

// DefaultWorkers is the survey pool size when none is configured.
func DefaultWorkers() int {
	return min(runtime.NumCPU(), 8)
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse reads configuration from HCL source. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Classifier == nil {
		c.Classifier = &ClassifierSettings{}
	}
	c.Classifier.Evaluator = strings.ToLower(strings.TrimSpace(c.Classifier.Evaluator))
	if c.Classifier.Evaluator == "" {
		c.Classifier.Evaluator = evaluator.NameNative
	}
	if c.Classifier.OutsCacheSize == 0 {
		c.Classifier.OutsCacheSize = classification.DefaultOutsCacheSize
	}

	if c.Survey == nil {
		c.Survey = &SurveySettings{}
	}
	if c.Survey.Workers == 0 {
		c.Survey.Workers = DefaultWorkers()
	}

	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Output.LogLevel == "" {
		c.Output.LogLevel = "info"
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
}

// Validate checks the configuration for values the classifier cannot use.
func (c *Config) Validate() error {
	if !slices.Contains(evaluator.Names(), c.Classifier.Evaluator) {
		return fmt.Errorf("invalid evaluator %q, want one of %v", c.Classifier.Evaluator, evaluator.Names())
	}
	if c.Classifier.OutsCacheSize < 0 {
		return fmt.Errorf("invalid outs_cache_size: %d", c.Classifier.OutsCacheSize)
	}
	if c.Survey.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", c.Survey.Workers)
	}
	if _, err := log.ParseLevel(c.Output.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Output.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ColorEnabled reports whether styled output is on.
func (c *Config) ColorEnabled() bool {
	return *c.Output.Color
}
