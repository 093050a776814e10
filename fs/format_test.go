package fs_test

import (
	"testing"

	"github.com/fwojciec/teologia"
	"github.com/fwojciec/teologia/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSource(t *testing.T) {
	t.Parallel()

	src := &teologia.Source{
		ID:       "boecio",
		Author:   "Boecio",
		Category: teologia.CategoryPhilosopher,
		Work:     "Consolación de la Filosofía",
		Topics:   []string{"providencia", "fortuna"},
		URL:      "https://www.gutenberg.org/ebooks/14328",
		Quote:    "La providencia es el plan divino que lo abarca todo.",
	}

	data, err := fs.FormatSource(src, 12)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, len(text) > 4 && text[:4] == "---\n", "starts with frontmatter")
	assert.Contains(t, text, "id: boecio\n")
	assert.Contains(t, text, "category: Filósofo\n")
	assert.Contains(t, text, "position: 12\n")
	assert.NotContains(t, text, "section:", "empty section is omitted")
	assert.Contains(t, text, "---\n\nLa providencia es el plan divino que lo abarca todo.\n")
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	t.Run("reads what FormatSource writes", func(t *testing.T) {
		t.Parallel()

		for i, want := range teologia.Catalog() {
			data, err := fs.FormatSource(&want, i)
			require.NoError(t, err)

			got, position, err := fs.ParseSource(data)
			require.NoError(t, err, want.ID)
			assert.Equal(t, want, *got)
			assert.Equal(t, i, position)
		}
	})

	t.Run("accepts hand-written files", func(t *testing.T) {
		t.Parallel()

		data := []byte("---\r\nid: kempis\r\nauthor: Tomás de Kempis\r\ncategory: Teólogo\r\nwork: Imitación de Cristo\r\nurl: https://example.com/kempis\r\n---\r\n\r\n  Ama ser ignorado.  \r\n")

		got, position, err := fs.ParseSource(data)
		require.NoError(t, err)
		assert.Equal(t, "kempis", got.ID)
		assert.Equal(t, teologia.CategoryTheologian, got.Category)
		assert.Equal(t, "  Ama ser ignorado.  ", got.Quote)
		assert.Equal(t, []string{}, got.Topics)
		assert.Equal(t, 0, position)
	})

	t.Run("keeps surrounding whitespace in the quote", func(t *testing.T) {
		t.Parallel()

		want := teologia.Catalog()[0]
		want.Quote = "\n  Nos hiciste, Señor, para ti.\t\n"

		data, err := fs.FormatSource(&want, 0)
		require.NoError(t, err)

		got, _, err := fs.ParseSource(data)
		require.NoError(t, err)
		assert.Equal(t, want.Quote, got.Quote)
	})

	t.Run("rejects missing frontmatter", func(t *testing.T) {
		t.Parallel()

		_, _, err := fs.ParseSource([]byte("# Boecio\n"))
		require.Error(t, err)
		assert.Equal(t, teologia.EINVALID, teologia.ErrorCode(err))
	})

	t.Run("rejects unterminated frontmatter", func(t *testing.T) {
		t.Parallel()

		_, _, err := fs.ParseSource([]byte("---\nid: boecio\n"))
		require.Error(t, err)
		assert.Equal(t, teologia.EINVALID, teologia.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, _, err := fs.ParseSource([]byte("---\nid: [boecio\n---\n\nquote\n"))
		require.Error(t, err)
		assert.Equal(t, teologia.EINVALID, teologia.ErrorCode(err))
	})
}
