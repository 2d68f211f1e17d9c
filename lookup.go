package docsearch

import (
	"context"
	"strings"
)

// Lookup answers a free-text query against one documentation source.
type Lookup interface {
	// Lookup runs the query and returns the formatted result.
	// Returns ENOTFOUND when nothing matched and *StatusError when the
	// source answered with a non-success status.
	Lookup(ctx context.Context, query string) (*Embed, error)
}

// SplitQuery splits a query into its first whitespace-delimited token and
// the remaining text. The remainder keeps its inner spacing.
func SplitQuery(query string) (head, rest string) {
	query = strings.TrimSpace(query)
	i := strings.IndexAny(query, " \t\n\r")
	if i < 0 {
		return query, ""
	}
	return query[:i], strings.TrimSpace(query[i+1:])
}
