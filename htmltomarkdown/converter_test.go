package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("renders synopsis emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><b>ls</b> [<i>OPTION</i>]... [<i>FILE</i>]...</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**ls**")
		assert.Contains(t, md, "*OPTION*")
		assert.Contains(t, md, "*FILE*")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("\n<p>List directory contents.</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "List directory contents.", md)
	})

	t.Run("converts links to other pages", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="https://man.cx/dircolors">dircolors</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[dircolors](https://man.cx/dircolors)")
	})

	t.Run("keeps preformatted examples as code", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<pre>grep -r foo .\n</pre>")

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, "grep -r foo .")
	})

	t.Run("converts option tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table>
<thead><tr><th>Option</th><th>Meaning</th></tr></thead>
<tbody><tr><td>-a</td><td>do not ignore entries starting with .</td></tr></tbody>
</table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Option")
		assert.Contains(t, md, "-a")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>0 if OK</li><li>1 if minor problems</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- 0 if OK")
		assert.Contains(t, md, "- 1 if minor problems")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})
}
