package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
)

// ExtractIndexEntries scans the list items of a reference index page in
// document order and keeps the first limit items whose visible text
// contains every term (case-sensitive). For each kept item the first
// anchor whose parent is a list item provides the link; items without such
// an anchor are dropped, so fewer than limit results may be returned.
//
// The result text is the anchor text when it contains every term, and the
// item's text with whitespace collapsed otherwise, so it always contains
// every term. Nested list items are matched independently, as a parent
// entry's text includes the text of its children.
func ExtractIndexEntries(html string, baseURL string, terms []string, limit int) ([]docsearch.ResultItem, error) {
	doc, base, err := parse(html, baseURL)
	if err != nil {
		return nil, err
	}

	var items []docsearch.ResultItem
	matched := 0
	doc.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if matched >= limit {
			return false
		}
		if !containsAll(li.Text(), terms) {
			return true
		}
		matched++

		if item, ok := anchorItem(base, li.Find("li > a").First()); ok {
			if !containsAll(item.Text, terms) {
				item.Text = strings.Join(strings.Fields(li.Text()), " ")
			}
			items = append(items, item)
		}
		return true
	})

	return items, nil
}

func containsAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}
