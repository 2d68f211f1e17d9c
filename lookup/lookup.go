// Package lookup implements the documentation lookups. Each lookup fetches
// its source once (the Stack Exchange lookup once per matched question),
// extracts a bounded result set and formats it as a docsearch.Embed.
package lookup

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docsearch"
)

// ResultLimit caps the number of links listed by the reference lookups.
const ResultLimit = 10

// resultsEmbed builds the embed shared by the reference lookups: a title
// and a single field listing every item as a link.
func resultsEmbed(title, query string, items []docsearch.ResultItem) *docsearch.Embed {
	e := docsearch.NewEmbed(title)
	e.AddField(fmt.Sprintf("Results for `%s` :", query), docsearch.FormatLinks(items), false)
	return e
}

func requireQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "Missing search text.")
	}
	return query, nil
}
