package lookup

import (
	"context"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/goquery"
)

// PythonIndexURL is the page listing every entry of the Python 3 index.
const PythonIndexURL = "https://docs.python.org/3/genindex-all.html"

var _ docsearch.Lookup = (*PythonDocs)(nil)

// PythonDocs filters the Python 3 general index by required substrings.
type PythonDocs struct {
	fetcher  docsearch.Fetcher
	indexURL string
}

// PythonOption configures PythonDocs.
type PythonOption func(*PythonDocs)

// WithIndexURL overrides the index page location.
func WithIndexURL(u string) PythonOption {
	return func(p *PythonDocs) {
		p.indexURL = u
	}
}

// NewPythonDocs creates a new PythonDocs lookup.
func NewPythonDocs(fetcher docsearch.Fetcher, opts ...PythonOption) *PythonDocs {
	p := &PythonDocs{
		fetcher:  fetcher,
		indexURL: PythonIndexURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lookup returns up to ResultLimit index entries containing every
// whitespace-separated word of the query.
func (p *PythonDocs) Lookup(ctx context.Context, query string) (*docsearch.Embed, error) {
	query, err := requireQuery(query)
	if err != nil {
		return nil, err
	}

	body, err := p.fetcher.Fetch(ctx, p.indexURL)
	if err != nil {
		return nil, err
	}

	items, err := goquery.ExtractIndexEntries(body, p.indexURL, strings.Fields(query), ResultLimit)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, docsearch.ErrNoResults
	}

	return resultsEmbed("Python 3 docs", query, items), nil
}
