package goquery_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docmeta"
	"github.com/fwojciec/docmeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements docmeta.MetadataExtractor at compile time.
var _ docmeta.MetadataExtractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts metadata from raw HTML", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		data, err := e.Extract(movieHTML)

		require.NoError(t, err)
		assert.Equal(t, "The Movie (2010) - IMDb", data.Title)
		require.NotNil(t, data.Canonical)
		assert.Equal(t, "https://www.imdb.com/title/tt1343727/", *data.Canonical)
		assert.Len(t, data.Other, 3)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		data, err := e.Extract("  \n")

		require.Error(t, err)
		assert.Nil(t, data)
		assert.Equal(t, docmeta.EINVALID, docmeta.ErrorCode(err))
	})

	t.Run("handles fragments without head or body", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		data, err := e.Extract(`<meta name="robots" content="noindex">`)

		require.NoError(t, err)
		require.NotNil(t, data.Robots)
		assert.Equal(t, "noindex", *data.Robots)
		assert.Nil(t, data.Other)
	})

	t.Run("returns parse error for malformed JSON-LD", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		_, err := e.Extract(`<html><head><script type="application/ld+json">{</script></head></html>`)

		var pe *docmeta.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 0, pe.Index)
	})
}
