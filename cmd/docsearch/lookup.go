package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/lookup"
	dsslog "github.com/fwojciec/docsearch/slog"
)

// Run executes the stack command.
func (c *StackCmd) Run(deps *Dependencies) error {
	return runLookup(deps, "stack", lookup.NewStackExchange(deps.Questions), c.Text)
}

// Run executes the pythondoc command.
func (c *PythonDocCmd) Run(deps *Dependencies) error {
	return runLookup(deps, "pythondoc", lookup.NewPythonDocs(deps.Fetcher), c.Text)
}

// Run executes the cppdoc command.
func (c *CppDocCmd) Run(deps *Dependencies) error {
	return runLookup(deps, "cppdoc", lookup.NewCppReference(deps.Fetcher, lookup.VariantCpp), c.Text)
}

// Run executes the cdoc command.
func (c *CDocCmd) Run(deps *Dependencies) error {
	return runLookup(deps, "cdoc", lookup.NewCppReference(deps.Fetcher, lookup.VariantC), c.Text)
}

// Run executes the manpage command.
func (c *ManPageCmd) Run(deps *Dependencies) error {
	var opts []lookup.ManualOption
	if c.Markdown {
		opts = append(opts, lookup.WithConverter(deps.Converter))
	}
	return runLookup(deps, "manpage", lookup.NewManualPages(deps.Fetcher, opts...), c.Text)
}

// runLookup runs l on the joined words and prints the reply. Failures the
// user can act on are printed as the reply and are not errors.
func runLookup(deps *Dependencies, command string, l docsearch.Lookup, words []string) error {
	if deps.Logger != nil {
		l = dsslog.NewLoggingLookup(l, command, deps.Logger)
	}

	e, err := l.Lookup(deps.Ctx, strings.Join(words, " "))
	if err != nil {
		fmt.Fprintln(deps.Stdout, docsearch.ErrorMessage(err))
		switch docsearch.ErrorCode(err) {
		case docsearch.ENOTFOUND, docsearch.EINVALID:
			return nil
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, docsearch.FormatEmbed(e))
	return nil
}
