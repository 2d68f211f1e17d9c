// Package goquery implements the HTML extraction rules of the scraped
// documentation sources on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
)

func parse(html string, baseURL string) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, docsearch.Errorf(docsearch.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, docsearch.Errorf(docsearch.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, base, nil
}

// anchorItem builds a result item from an anchor selection. It returns
// false when the anchor has no text, no usable href, or does not resolve
// to an absolute URL.
func anchorItem(base *url.URL, a *goquery.Selection) (docsearch.ResultItem, bool) {
	href, exists := a.Attr("href")
	if !exists || href == "" || isNonHTTPLink(href) {
		return docsearch.ResultItem{}, false
	}

	item := docsearch.ResultItem{
		Text: strings.TrimSpace(a.Text()),
		URL:  resolveURL(base, href),
	}
	if item.Validate() != nil {
		return docsearch.ResultItem{}, false
	}
	return item, true
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed.
// Fragments are kept since index entries point into their target page.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
