package etree_test

import (
	"testing"

	beevik "github.com/beevik/etree"
	"github.com/fwojciec/docmeta"
	"github.com/fwojciec/docmeta/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Formatter implements docmeta.Formatter at compile time.
var _ docmeta.Formatter = (*etree.Formatter)(nil)

func parse(t *testing.T, b []byte) *beevik.Element {
	t.Helper()
	doc := beevik.NewDocument()
	require.NoError(t, doc.ReadFromBytes(b))
	root := doc.Root()
	require.NotNil(t, root)
	return root
}

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("writes fields in record order", func(t *testing.T) {
		t.Parallel()

		f := etree.NewFormatter()

		b, err := f.Format(&docmeta.Metadata{Title: "Example"})

		require.NoError(t, err)
		root := parse(t, b)
		assert.Equal(t, "metadata", root.Tag)

		children := root.ChildElements()
		require.Len(t, children, 21)
		assert.Equal(t, "title", children[0].Tag)
		assert.Equal(t, "Example", children[0].Text())
		assert.Equal(t, "jsonld", children[10].Tag)
		assert.Equal(t, "other", children[20].Tag)
	})

	t.Run("marks absent fields", func(t *testing.T) {
		t.Parallel()

		f := etree.NewFormatter()

		b, err := f.Format(&docmeta.Metadata{})

		require.NoError(t, err)
		root := parse(t, b)
		assert.Equal(t, "true", root.SelectElement("description").SelectAttrValue("absent", ""))
		assert.Equal(t, "true", root.SelectElement("opengraph").SelectAttrValue("absent", ""))
		assert.Equal(t, "true", root.SelectElement("jsonld").SelectAttrValue("absent", ""))
		assert.Nil(t, root.SelectElement("title").SelectAttr("absent"))
	})

	t.Run("writes attribute lists by index", func(t *testing.T) {
		t.Parallel()

		f := etree.NewFormatter()
		canonical := "https://example.com/"

		b, err := f.Format(&docmeta.Metadata{
			Canonical: &canonical,
			Favicons: []docmeta.Attributes{
				{
					"rel":  {Name: "rel", Value: "icon"},
					"href": {Name: "href", Value: "/favicon.ico"},
				},
			},
		})

		require.NoError(t, err)
		root := parse(t, b)
		assert.Equal(t, canonical, root.SelectElement("canonical").Text())

		elements := root.SelectElement("favicons").SelectElements("element")
		require.Len(t, elements, 1)
		assert.Equal(t, "0", elements[0].SelectAttrValue("index", ""))

		attrs := elements[0].SelectElements("attribute")
		require.Len(t, attrs, 2)
		assert.Equal(t, "href", attrs[0].SelectAttrValue("name", ""))
		assert.Equal(t, "/favicon.ico", attrs[0].Text())
		assert.Equal(t, "rel", attrs[1].SelectAttrValue("name", ""))
		assert.Equal(t, "icon", attrs[1].Text())
	})

	t.Run("writes JSON-LD as compact JSON text", func(t *testing.T) {
		t.Parallel()

		f := etree.NewFormatter()

		b, err := f.Format(&docmeta.Metadata{
			JSONLD: []any{map[string]any{"@type": "Movie"}},
		})

		require.NoError(t, err)
		root := parse(t, b)
		items := root.SelectElement("jsonld").SelectElements("item")
		require.Len(t, items, 1)
		assert.Equal(t, `{"@type":"Movie"}`, items[0].Text())
	})

	t.Run("returns error for nil metadata", func(t *testing.T) {
		t.Parallel()

		f := etree.NewFormatter()

		_, err := f.Format(nil)

		assert.Equal(t, docmeta.EINVALID, docmeta.ErrorCode(err))
	})
}
