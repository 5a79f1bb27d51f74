package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/handshapes/internal/config"
	"github.com/lox/handshapes/sdk/classification"
	"github.com/lox/handshapes/sdk/evaluator"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config    string `short:"c" default:"${config_file}" env:"HANDCLASS_CONFIG" help:"Path to HCL configuration file"`
	Evaluator string `short:"e" env:"HANDCLASS_EVALUATOR" help:"Hand evaluator: native, treys or hankin (overrides config)"`
	Debug     bool   `env:"HANDCLASS_DEBUG" help:"Enable debug logging"`
	NoColor   bool   `env:"HANDCLASS_NO_COLOR" help:"Disable styled output"`

	out   io.Writer    `kong:"-"`
	clock quartz.Clock `kong:"-"`
}

// app is everything a command needs, resolved from flags and config.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	ev     evaluator.Evaluator
	cache  *classification.OutsCache
	styles styles
	out    io.Writer
	clock  quartz.Clock
}

func (g *Globals) setup() (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if g.Evaluator != "" {
		cfg.Classifier.Evaluator = strings.ToLower(strings.TrimSpace(g.Evaluator))
	}
	if g.Debug {
		cfg.Output.LogLevel = "debug"
	}
	if g.NoColor {
		color := false
		cfg.Output.Color = &color
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ev, err := evaluator.New(cfg.Classifier.Evaluator)
	if err != nil {
		return nil, err
	}
	cache, err := classification.NewOutsCache(cfg.Classifier.OutsCacheSize)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		logger: setupLogger(cfg.LogLevel()),
		ev:     ev,
		cache:  cache,
		styles: newStyles(cfg.ColorEnabled()),
		out:    g.out,
		clock:  g.clock,
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.clock == nil {
		a.clock = quartz.NewReal()
	}

	a.logger.Debug("Configuration loaded",
		"file", g.Config,
		"evaluator", cfg.Classifier.Evaluator,
		"outsCache", cfg.Classifier.OutsCacheSize,
		"workers", cfg.Survey.Workers)
	return a, nil
}

func (a *app) handOptions() []classification.HandOption {
	return []classification.HandOption{
		classification.WithEvaluator(a.ev),
		classification.WithOutsCache(a.cache),
	}
}
