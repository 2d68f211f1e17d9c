package lookup

import (
	"context"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/goquery"
)

// CppSearchURL is the cppreference.com search endpoint; the query text is
// appended to it.
const CppSearchURL = "https://en.cppreference.com/mwiki/index.php?title=Special:Search&search="

// Variant selects one of the language namespaces of cppreference.com.
type Variant struct {
	Language   string
	PathPrefix string
}

// Namespaces of cppreference.com.
var (
	VariantC   = Variant{Language: "C", PathPrefix: "/w/c/"}
	VariantCpp = Variant{Language: "C++", PathPrefix: "/w/cpp/"}
)

var _ docsearch.Lookup = (*CppReference)(nil)

// CppReference searches cppreference.com and lists the results of one
// language namespace.
type CppReference struct {
	fetcher   docsearch.Fetcher
	variant   Variant
	searchURL string
}

// CppOption configures CppReference.
type CppOption func(*CppReference)

// WithSearchURL overrides the search endpoint.
func WithSearchURL(u string) CppOption {
	return func(c *CppReference) {
		c.searchURL = u
	}
}

// NewCppReference creates a new CppReference lookup for the variant.
func NewCppReference(fetcher docsearch.Fetcher, variant Variant, opts ...CppOption) *CppReference {
	c := &CppReference{
		fetcher:   fetcher,
		variant:   variant,
		searchURL: CppSearchURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup submits the query to the search endpoint and returns up to
// ResultLimit links from the result block of the variant's namespace.
func (c *CppReference) Lookup(ctx context.Context, query string) (*docsearch.Embed, error) {
	query, err := requireQuery(query)
	if err != nil {
		return nil, err
	}

	body, err := c.fetcher.Fetch(ctx, docsearch.QuoteURL(c.searchURL+query))
	if err != nil {
		return nil, err
	}

	items, err := goquery.ExtractSearchResults(body, c.searchURL, c.variant.PathPrefix, ResultLimit)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, docsearch.ErrNoResults
	}

	return resultsEmbed(c.variant.Language+" docs", query, items), nil
}
