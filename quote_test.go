package docsearch_test

import (
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/stretchr/testify/assert"
)

func TestQuoteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keeps scheme and path", "https://man.cx/ls", "https://man.cx/ls"},
		{"keeps query separators", "https://x.org/index.php?title=Special:Search&search=vector", "https://x.org/index.php?title=Special:Search&search=vector"},
		{"turns spaces into plus", "https://x.org/?q=std vector", "https://x.org/?q=std+vector"},
		{"keeps angle and square brackets", "https://x.org/?q=vector<int>[0]", "https://x.org/?q=vector<int>[0]"},
		{"encodes plus and hash", "https://x.org/?q=c++#top", "https://x.org/?q=c%2B%2B%23top"},
		{"encodes percent", "https://x.org/?q=100%", "https://x.org/?q=100%25"},
		{"encodes utf-8 bytes", "https://x.org/?q=é", "https://x.org/?q=%C3%A9"},
		{"encodes quotes and braces", `https://x.org/?q="{}"`, "https://x.org/?q=%22%7B%7D%22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docsearch.QuoteURL(tt.in))
		})
	}
}
