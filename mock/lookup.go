package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Lookup = (*Lookup)(nil)

// Lookup is a mock implementation of docsearch.Lookup.
type Lookup struct {
	LookupFn func(ctx context.Context, query string) (*docsearch.Embed, error)
}

func (l *Lookup) Lookup(ctx context.Context, query string) (*docsearch.Embed, error) {
	return l.LookupFn(ctx, query)
}
