package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/docsearch"
	main "github.com/fwojciec/docsearch/cmd/docsearch"
	dshttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/mock"
	"github.com/fwojciec/docsearch/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_Settings(t *testing.T) {
	t.Parallel()

	t.Run("uses defaults when nothing is set", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}

		s := cli.Settings(&yaml.Config{})

		assert.Equal(t, main.Settings{
			Timeout:   dshttp.DefaultFetchTimeout,
			RateLimit: main.DefaultRateLimit,
		}, s)
	})

	t.Run("takes values from the config file", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}

		s := cli.Settings(&yaml.Config{SEKey: "file-key", Timeout: 3 * time.Second, RateLimit: 5, Debug: true})

		assert.Equal(t, main.Settings{SEKey: "file-key", Timeout: 3 * time.Second, RateLimit: 5, Debug: true}, s)
	})

	t.Run("flags override the config file", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{SEKey: "flag-key", Timeout: time.Second, RateLimit: 1}

		s := cli.Settings(&yaml.Config{SEKey: "file-key", Timeout: 3 * time.Second, RateLimit: 5})

		assert.Equal(t, "flag-key", s.SEKey)
		assert.Equal(t, time.Second, s.Timeout)
		assert.InDelta(t, 1.0, s.RateLimit, 0)
		assert.False(t, s.Debug)
	})
}

func TestPythonDocCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the embed as markdown", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: pageFetcher(nil),
		}

		cmd := &main.PythonDocCmd{Text: []string{"abs"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.True(t, strings.HasPrefix(output, "# Python 3 docs"))
		assert.Contains(t, output, "**Results for `abs` :**")
		assert.Contains(t, output, "[abs() (built-in function)](https://docs.python.org/3/library/functions.html#abs)")
	})

	t.Run("prints missing text message without failing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: pageFetcher(nil),
		}

		cmd := &main.PythonDocCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Missing search text.\n", stdout.String())
	})
}

func TestManPageCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders sections through the converter in markdown mode", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		converted := 0
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: pageFetcher(nil),
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					converted++
					return "**ls** [*OPTION*]", nil
				},
			},
		}

		cmd := &main.ManPageCmd{Text: []string{"ls"}, Markdown: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, converted)
		assert.Contains(t, stdout.String(), "**SYNOPSIS**\n**ls** [*OPTION*]")
	})

	t.Run("leaves the converter unused by default", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: pageFetcher(nil),
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					t.Fatal("unexpected conversion")
					return "", nil
				},
			},
		}

		cmd := &main.ManPageCmd{Text: []string{"ls"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# ls - list directory contents")
		assert.Contains(t, stdout.String(), "**SYNOPSIS**\nls [OPTION]... [FILE]...")
	})
}

func TestStackCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints unknown site message without failing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Questions: &mock.QuestionService{},
		}

		cmd := &main.StackCmd{Text: []string{"Overflow", "goroutines"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Overflow does not appear to be in the StackExchange network. Check the case and the spelling.\n", stdout.String())
	})

	t.Run("returns internal errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Questions: &mock.QuestionService{
				SearchQuestionsFn: func(_ context.Context, _ docsearch.Site, _ string, _ int) ([]*docsearch.Question, error) {
					return nil, errors.New("decode response: unexpected end of JSON input")
				},
			},
		}

		cmd := &main.StackCmd{Text: []string{"StackOverflow", "goroutines"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, "Internal error.\n", stdout.String())
	})
}
