//go:build unit

package entities_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

func TestAggregatedDocument(t *testing.T) {
	t.Parallel()

	ref := entities.RepositoryReference{Kind: entities.HostGitHub, Owner: "acme", Name: "widgets"}

	t.Run("should render an empty document as empty text", func(t *testing.T) {
		t.Parallel()

		// given
		document := entities.NewAggregatedDocument(ref, 100)

		// when
		text := document.Text()

		// then
		assert.Empty(t, text)
		assert.Empty(t, document.Entries)
		assert.False(t, document.Truncated())
	})

	t.Run("should render delimited entries in append order", func(t *testing.T) {
		t.Parallel()

		// given
		document := entities.NewAggregatedDocument(ref, 100000)
		document.Append("src/a.js", "console.log('a')")
		document.Append("README.md", "# Widgets")

		// when
		text := document.Text()

		// then
		expected := "===== FILE: src/a.js =====\nconsole.log('a')\n\n" +
			"===== FILE: README.md =====\n# Widgets\n\n"
		assert.Equal(t, expected, text)
		assert.False(t, document.Truncated())
	})

	t.Run("should return the full text when it fits the cap", func(t *testing.T) {
		t.Parallel()

		// given
		document := entities.NewAggregatedDocument(ref, 0)
		document.Append("a.txt", "abc")
		full := document.Untruncated()
		document.MaxChars = len(full)

		// when
		text := document.Text()

		// then
		assert.Equal(t, full, text)
		assert.False(t, document.Truncated())
	})

	t.Run("should cut to exactly the cap when longer", func(t *testing.T) {
		t.Parallel()

		// given
		document := entities.NewAggregatedDocument(ref, 30)
		document.Append("a.txt", strings.Repeat("x", 50))
		document.Append("b.txt", strings.Repeat("y", 50))

		// when
		text := document.Text()

		// then
		assert.Equal(t, 30, utf8.RuneCountInString(text))
		assert.Equal(t, document.Untruncated()[:30], text)
		assert.True(t, document.Truncated())
	})
}

func TestTruncateChars(t *testing.T) {
	t.Parallel()

	t.Run("should keep text not longer than the limit", func(t *testing.T) {
		t.Parallel()

		// given
		text := "abcdef"

		// when
		result := entities.TruncateChars(text, 6)

		// then
		assert.Equal(t, "abcdef", result)
	})

	t.Run("should disable the cap for non-positive limits", func(t *testing.T) {
		t.Parallel()

		// given
		text := "abcdef"

		// when
		result := entities.TruncateChars(text, 0)

		// then
		assert.Equal(t, "abcdef", result)
	})

	t.Run("should count code points instead of bytes", func(t *testing.T) {
		t.Parallel()

		// given
		text := "correção"

		// when
		result := entities.TruncateChars(text, 6)

		// then
		assert.Equal(t, "correç", result)
		assert.True(t, utf8.ValidString(result))
	})

	t.Run("should keep multibyte text within the limit", func(t *testing.T) {
		t.Parallel()

		// given
		text := "ação"

		// when
		result := entities.TruncateChars(text, 4)

		// then
		assert.Equal(t, "ação", result)
	})
}
