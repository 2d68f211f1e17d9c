package docsearch

import (
	"net/url"
	"strings"
)

// ResultItem is a single extracted result: a display text, the absolute
// link it points to and optional statistics shown on hover.
type ResultItem struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Stats string `json:"stats,omitempty"`
}

// Validate returns an error if the item contains invalid fields.
func (r *ResultItem) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return Errorf(EINVALID, "result text required")
	}
	u, err := url.Parse(r.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Errorf(EINVALID, "result link must be an absolute URL: %q", r.URL)
	}
	return nil
}

// Markdown renders the item as a markdown link. Stats, when present, are
// rendered as the link title so chat clients show them on hover.
func (r *ResultItem) Markdown() string {
	if r.Stats == "" {
		return "[" + r.Text + "](" + r.URL + ")"
	}
	return "[" + r.Text + "](" + r.URL + ` "` + r.Stats + `")`
}

// FormatLinks renders items as markdown links, one per line.
func FormatLinks(items []ResultItem) string {
	lines := make([]string, 0, len(items))
	for i := range items {
		lines = append(lines, items[i].Markdown())
	}
	return strings.Join(lines, "\n")
}
