package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/goquery"
)

// ManualURL is the man.cx page root; the page name is appended to it.
const ManualURL = "https://man.cx/"

// ManualSectionLimit caps the sections shown after the summary.
const ManualSectionLimit = 3

var _ docsearch.Lookup = (*ManualPages)(nil)

// ManualPages shows the summary and leading sections of a manual page.
type ManualPages struct {
	fetcher   docsearch.Fetcher
	converter docsearch.Converter
	baseURL   string
}

// ManualOption configures ManualPages.
type ManualOption func(*ManualPages)

// WithManualURL overrides the page root.
func WithManualURL(u string) ManualOption {
	return func(m *ManualPages) {
		m.baseURL = u
	}
}

// WithConverter renders section bodies as markdown through c instead of
// joining their text.
func WithConverter(c docsearch.Converter) ManualOption {
	return func(m *ManualPages) {
		m.converter = c
	}
}

// NewManualPages creates a new ManualPages lookup.
func NewManualPages(fetcher docsearch.Fetcher, opts ...ManualOption) *ManualPages {
	m := &ManualPages{
		fetcher: fetcher,
		baseURL: ManualURL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Lookup fetches the manual page named by the query.
func (m *ManualPages) Lookup(ctx context.Context, query string) (*docsearch.Embed, error) {
	name, err := requireQuery(query)
	if err != nil {
		return nil, err
	}

	pageURL := docsearch.QuoteURL(m.baseURL + name)
	body, err := m.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	page, err := goquery.ExtractManualPage(body, ManualSectionLimit)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "No manual entry for `%s`. (Debian)", name)
	}

	title := page.Summary
	if title == "" {
		title = name
	}
	e := docsearch.NewEmbed(title)
	e.URL = pageURL
	e.Author = "Linux man pages"

	for _, section := range page.Sections {
		value, err := m.sectionValue(section)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", section.Name, err)
		}
		if value == "" {
			continue
		}
		e.AddField(section.Name, value, true)
	}

	return e, nil
}

func (m *ManualPages) sectionValue(section docsearch.ManualSection) (string, error) {
	if m.converter == nil || strings.TrimSpace(section.HTML) == "" {
		return section.Text, nil
	}
	md, err := m.converter.Convert(section.HTML)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
