// Package yaml implements a YAML metadata formatter.
package yaml

import (
	"bytes"

	"github.com/fwojciec/docmeta"
	yamlv3 "gopkg.in/yaml.v3"
)

// Ensure Formatter implements docmeta.Formatter at compile time.
var _ docmeta.Formatter = (*Formatter)(nil)

// Formatter renders metadata as a YAML mapping with one key per field in
// record order. Absent fields are null.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// field is one key of the rendered mapping.
type field struct {
	key    string
	value  any
	absent bool
}

// Format renders m as YAML.
func (f *Formatter) Format(m *docmeta.Metadata) ([]byte, error) {
	if m == nil {
		return nil, docmeta.Errorf(docmeta.EINVALID, "metadata required")
	}

	fields := []field{
		{"title", m.Title, false},
		{"description", m.Description, m.Description == nil},
		{"apple", m.Apple, m.Apple == nil},
		{"applink", m.AppLink, m.AppLink == nil},
		{"charset", m.Charset, m.Charset == nil},
		{"canonical", m.Canonical, m.Canonical == nil},
		{"alternatives", m.Alternatives, m.Alternatives == nil},
		{"dc", m.DublinCore, m.DublinCore == nil},
		{"dnsPrefetch", m.DNSPrefetch, m.DNSPrefetch == nil},
		{"favicons", m.Favicons, m.Favicons == nil},
		{"jsonld", m.JSONLD, m.JSONLD == nil},
		{"manifest", m.Manifest, m.Manifest == nil},
		{"opengraph", m.Opengraph, m.Opengraph == nil},
		{"preconnect", m.Preconnect, m.Preconnect == nil},
		{"prefetch", m.Prefetch, m.Prefetch == nil},
		{"preload", m.Preload, m.Preload == nil},
		{"robots", m.Robots, m.Robots == nil},
		{"stylesheets", m.Stylesheets, m.Stylesheets == nil},
		{"twitter", m.Twitter, m.Twitter == nil},
		{"viewport", m.Viewport, m.Viewport == nil},
		{"other", m.Other, m.Other == nil},
	}

	root := &yamlv3.Node{Kind: yamlv3.MappingNode}
	for _, fl := range fields {
		key := &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: fl.key}
		value := &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null", Value: "null"}
		if !fl.absent {
			if err := value.Encode(fl.value); err != nil {
				return nil, err
			}
		}
		root.Content = append(root.Content, key, value)
	}

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
