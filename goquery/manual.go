package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Marker text of the section every manual page starts with.
const nameSection = "NAME"

// Navigation entry some manual sites append for user comments.
const commentsSection = "COMMENTS"

var isSectionMarker = IsElement(atom.H2)

// ExtractManualPage extracts the NAME summary and up to maxSections
// further sections of a man.cx style manual page.
//
// It returns a nil page and nil error when the page has no NAME section,
// which is how the site answers for unknown commands. Sections are found
// through the second nav element: its first entry duplicates NAME and is
// skipped, a trailing COMMENTS entry is dropped, and every other entry's
// anchor fragment names the element (by name or id) inside the section's
// h2 marker. Entries whose anchor or target cannot be found are skipped.
func ExtractManualPage(body string, maxSections int) (*docsearch.ManualPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "failed to parse HTML: %v", err)
	}

	nameTag := doc.Find("h2").FilterFunction(func(_ int, h2 *goquery.Selection) bool {
		return strings.TrimSpace(h2.Text()) == nameSection
	}).First()
	if nameTag.Length() == 0 {
		return nil, nil
	}

	page := &docsearch.ManualPage{
		Summary: JoinText(SiblingsUntil(nameTag.Get(0), isSectionMarker)),
	}

	for _, entry := range navigationEntries(doc, maxSections) {
		section, ok, err := extractSection(doc, entry)
		if err != nil {
			return nil, err
		}
		if ok {
			page.Sections = append(page.Sections, section)
		}
	}

	return page, nil
}

// navigationEntries returns the section entries of the page navigation,
// without the leading NAME entry and a trailing COMMENTS entry.
func navigationEntries(doc *goquery.Document, maxSections int) []*goquery.Selection {
	navs := doc.Find("nav")
	if navs.Length() < 2 {
		return nil
	}

	var entries []*goquery.Selection
	navs.Eq(1).Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		if i > maxSections {
			return false
		}
		if i > 0 {
			entries = append(entries, li)
		}
		return true
	})

	if n := len(entries); n > 0 && strings.TrimSpace(entries[n-1].Text()) == commentsSection {
		entries = entries[:n-1]
	}
	return entries
}

func extractSection(doc *goquery.Document, entry *goquery.Selection) (docsearch.ManualSection, bool, error) {
	href, _ := entry.Find("a").First().Attr("href")
	anchor := strings.TrimPrefix(strings.TrimSpace(href), "#")
	if anchor == "" {
		return docsearch.ManualSection{}, false, nil
	}

	marker := sectionMarker(doc, anchor)
	if marker == nil {
		return docsearch.ManualSection{}, false, nil
	}

	nodes := SiblingsUntil(marker, isSectionMarker)
	markup, err := RenderNodes(nodes)
	if err != nil {
		return docsearch.ManualSection{}, false, err
	}

	return docsearch.ManualSection{
		Name: strings.TrimSpace(entry.Text()),
		Text: JoinText(nodes),
		HTML: markup,
	}, true, nil
}

// sectionMarker finds the element whose name or id equals anchor and
// returns the h2 it marks: the element itself when it is an h2, otherwise
// its parent.
func sectionMarker(doc *goquery.Document, anchor string) *html.Node {
	target := doc.Find("[name], [id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		id, _ := s.Attr("id")
		return name == anchor || id == anchor
	}).First()
	if target.Length() == 0 {
		return nil
	}

	n := target.Get(0)
	if isSectionMarker(n) {
		return n
	}
	return n.Parent
}
