package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/htmltomarkdown"
	dshttp "github.com/fwojciec/docsearch/http"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/stackexchange"
	"github.com/fwojciec/docsearch/yaml"
)

// DefaultRateLimit is the Stack Exchange request rate used when neither a
// flag nor the configuration file sets one.
const DefaultRateLimit = 30.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Settings resolved from flags, environment and configuration file.
	// Populated by Run().
	Settings Settings

	// Services for end-to-end testing. Set before calling Run() to replace
	// the network-backed implementations.
	Fetcher   docsearch.Fetcher
	Questions docsearch.QuestionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Description("Search programming documentation and Stack Exchange sites"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	m.Settings = cli.Settings(cfg)

	if m.Settings.Debug {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = dshttp.NewFetcher(dshttp.WithTimeout(m.Settings.Timeout))
	}
	if deps.Logger != nil {
		fetcher = dsslog.NewLoggingFetcher(fetcher, deps.Logger)
	}
	defer fetcher.Close()

	questions := m.Questions
	if questions == nil {
		questions = stackexchange.NewClient(fetcher,
			stackexchange.WithKey(m.Settings.SEKey),
			stackexchange.WithRateLimit(m.Settings.RateLimit),
		)
	}
	if deps.Logger != nil {
		questions = dsslog.NewLoggingQuestionService(questions, deps.Logger)
	}

	deps.Fetcher = fetcher
	deps.Questions = questions
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// Settings are the effective runtime settings of one invocation.
type Settings struct {
	SEKey     string
	Timeout   time.Duration
	RateLimit float64
	Debug     bool
}

// loadConfig reads the configuration file. An explicit path must exist;
// the default path is optional.
func loadConfig(path string) (*yaml.Config, error) {
	if path != "" {
		return yaml.Load(path)
	}
	path = yaml.DefaultPath()
	if path == "" {
		return &yaml.Config{}, nil
	}
	cfg, err := yaml.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &yaml.Config{}, nil
	}
	return cfg, err
}
