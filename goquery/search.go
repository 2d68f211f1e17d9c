package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
)

// SearchResultsSelector matches the result containers of a MediaWiki
// search page.
const SearchResultsSelector = "ul.mw-search-results"

// ExtractSearchResults picks one result container from a MediaWiki search
// page and returns up to limit of its anchors in document order.
//
// The chosen container is the first one whose first link resolves to a
// path starting with pathPrefix; when none does, the first container is
// used. A page without containers yields no results.
func ExtractSearchResults(html string, baseURL string, pathPrefix string, limit int) ([]docsearch.ResultItem, error) {
	doc, base, err := parse(html, baseURL)
	if err != nil {
		return nil, err
	}

	containers := doc.Find(SearchResultsSelector)
	if containers.Length() == 0 {
		return nil, nil
	}

	chosen := containers.First()
	containers.EachWithBreak(func(_ int, ul *goquery.Selection) bool {
		if hasPathPrefix(base, ul.Find("a").First(), pathPrefix) {
			chosen = ul
			return false
		}
		return true
	})

	anchors := chosen.Find("a")
	if anchors.Length() > limit {
		anchors = anchors.Slice(0, limit)
	}

	var items []docsearch.ResultItem
	anchors.Each(func(_ int, a *goquery.Selection) {
		if item, ok := anchorItem(base, a); ok {
			items = append(items, item)
		}
	})

	return items, nil
}

func hasPathPrefix(base *url.URL, a *goquery.Selection, prefix string) bool {
	href, exists := a.Attr("href")
	if !exists {
		return false
	}
	u, err := url.Parse(resolveURL(base, href))
	if err != nil {
		return false
	}
	return strings.HasPrefix(u.Path, prefix)
}
