package docsearch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docsearch.Errorf(docsearch.ENOTFOUND, "No manual entry for `%s`. (Debian)", "nosuchcmd")

	assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
	assert.Equal(t, "No manual entry for `nosuchcmd`. (Debian)", docsearch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docsearch.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docsearch.ErrorMessage(nil))
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("status error yields retry-later message", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetch index: %w", &docsearch.StatusError{StatusCode: 503, URL: "https://docs.python.org"})

		assert.Equal(t, docsearch.EUNAVAILABLE, docsearch.ErrorCode(err))
		assert.Equal(t, "An error occurred (status code: 503). Retry later.", docsearch.ErrorMessage(err))
	})

	t.Run("unknown site error names the site", func(t *testing.T) {
		t.Parallel()

		err := &docsearch.UnknownSiteError{Site: "stackoverflow"}

		assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
		assert.Equal(t, "stackoverflow does not appear to be in the StackExchange network. Check the case and the spelling.", docsearch.ErrorMessage(err))
	})

	t.Run("no results is a not-found error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(docsearch.ErrNoResults))
		assert.Equal(t, "No results", docsearch.ErrorMessage(docsearch.ErrNoResults))
	})

	t.Run("other errors are internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, docsearch.EINTERNAL, docsearch.ErrorCode(err))
		assert.Equal(t, "Internal error.", docsearch.ErrorMessage(err))
	})
}
