package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	dshttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   docsearch.Fetcher
	Questions docsearch.QuestionService
	Converter docsearch.Converter

	// Logger is set only in debug mode.
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string        `help:"Configuration file (default ~/.docsearch.yaml)" env:"DOCSEARCH_CONFIG"`
	SEKey     string        `name:"se-key" help:"Stack Exchange API key" env:"SE_KEY"`
	Timeout   time.Duration `help:"HTTP request timeout"`
	RateLimit float64       `name:"rate-limit" help:"Stack Exchange requests per second"`
	Debug     bool          `help:"Log lookups and fetches to stderr"`

	Stack     StackCmd     `cmd:"" name:"stack" aliases:"se" help:"Search question titles on a Stack Exchange site"`
	PythonDoc PythonDocCmd `cmd:"" name:"pythondoc" help:"Search the Python 3 documentation index"`
	CppDoc    CppDocCmd    `cmd:"" name:"cppdoc" aliases:"c++doc" help:"Search the C++ reference"`
	CDoc      CDocCmd      `cmd:"" name:"cdoc" help:"Search the C reference"`
	ManPage   ManPageCmd   `cmd:"" name:"manpage" aliases:"man" help:"Show a Linux manual page"`
}

// Settings merges the parsed flags over the configuration file. Flags and
// their environment variables win over file values; unset values fall
// back to defaults.
func (c *CLI) Settings(cfg *yaml.Config) Settings {
	s := Settings{
		SEKey:     cfg.SEKey,
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		Debug:     cfg.Debug || c.Debug,
	}
	if c.SEKey != "" {
		s.SEKey = c.SEKey
	}
	if c.Timeout > 0 {
		s.Timeout = c.Timeout
	}
	if c.RateLimit > 0 {
		s.RateLimit = c.RateLimit
	}
	if s.Timeout <= 0 {
		s.Timeout = dshttp.DefaultFetchTimeout
	}
	if s.RateLimit <= 0 {
		s.RateLimit = DefaultRateLimit
	}
	return s
}

// StackCmd is the "stack" subcommand.
type StackCmd struct {
	Text []string `arg:"" optional:"" help:"Site name followed by the search text"`
}

// PythonDocCmd is the "pythondoc" subcommand.
type PythonDocCmd struct {
	Text []string `arg:"" optional:"" help:"Words to find in the index"`
}

// CppDocCmd is the "cppdoc" subcommand.
type CppDocCmd struct {
	Text []string `arg:"" optional:"" help:"Search text"`
}

// CDocCmd is the "cdoc" subcommand.
type CDocCmd struct {
	Text []string `arg:"" optional:"" help:"Search text"`
}

// ManPageCmd is the "manpage" subcommand.
type ManPageCmd struct {
	Text     []string `arg:"" optional:"" help:"Page name"`
	Markdown bool     `help:"Render sections as Markdown"`
}
