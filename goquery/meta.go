package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmeta"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Selectors used by the Meta accessors. Values flagged with " i" match
// case-insensitively; the description name matches exactly.
const (
	selectorDescription  = `meta[name="description"]`
	selectorCanonical    = `link[rel="canonical" i]`
	selectorCharset      = `meta[charset]`
	selectorRobots       = `meta[name="robots" i]`
	selectorViewport     = `meta[name="viewport" i]`
	selectorManifest     = `link[rel="manifest" i]`
	selectorAlternatives = `link[rel*="alternate" i]`
	selectorApple        = `meta[name^="apple-" i]`
	selectorAppLink      = `meta[property^="al:" i]`
	selectorDNSPrefetch  = `link[rel="dns-prefetch" i]`
	selectorPreconnect   = `link[rel="preconnect" i]`
	selectorPrefetch     = `link[rel="prefetch" i]`
	selectorPreload      = `link[rel="preload" i]`
	selectorDublinCore   = `meta[name^="dc." i]`
	selectorFavicons     = `link[rel*="icon" i]`
	selectorOpengraph    = `meta[property^="og:" i]`
	selectorTwitter      = `meta[property^="twitter:" i]`
	selectorStylesheets  = `link[rel*="stylesheet" i]`
	selectorJSONLD       = `script[type="application/ld+json" i]`
)

// elementKind tags a matched element so accessors read the right attribute
// without re-inspecting the node.
type elementKind int

const (
	kindOther elementKind = iota
	kindMeta
	kindLink
)

func kindOf(n *html.Node) elementKind {
	switch n.DataAtom {
	case atom.Meta:
		return kindMeta
	case atom.Link:
		return kindLink
	}
	return kindOther
}

// valueAttr returns the attribute holding an element's primary value.
func (k elementKind) valueAttr() string {
	switch k {
	case kindMeta:
		return "content"
	case kindLink:
		return "href"
	}
	return ""
}

// element is a matched node together with its kind.
type element struct {
	node *html.Node
	kind elementKind
}

func newElement(n *html.Node) element {
	return element{node: n, kind: kindOf(n)}
}

// Meta answers metadata queries against a parsed document and remembers
// which meta and link elements its accessors have reported.
//
// The set of meta and link elements is captured by NewMeta; later changes
// to the document are not reflected. A Meta is not safe for concurrent use.
type Meta struct {
	doc      *goquery.Document
	elements []*html.Node

	queried []*html.Node
	seen    map[*html.Node]struct{}
}

// NewMeta creates a Meta over doc, collecting all meta elements followed by
// all link elements.
func NewMeta(doc *goquery.Document) *Meta {
	m := &Meta{
		doc:  doc,
		seen: make(map[*html.Node]struct{}),
	}
	m.elements = append(m.elements, doc.Find("meta").Nodes...)
	m.elements = append(m.elements, doc.Find("link").Nodes...)
	return m
}

// markQueried appends n to the queried set unless it is already there.
func (m *Meta) markQueried(n *html.Node) {
	if _, ok := m.seen[n]; ok {
		return
	}
	m.seen[n] = struct{}{}
	m.queried = append(m.queried, n)
}

// Queried returns the elements reported so far, in the order they were
// first reported.
func (m *Meta) Queried() []*html.Node {
	out := make([]*html.Node, len(m.queried))
	copy(out, m.queried)
	return out
}

// Unqueried returns the meta and link elements not yet reported, in
// collection order.
func (m *Meta) Unqueried() []*html.Node {
	var out []*html.Node
	for _, n := range m.elements {
		if _, ok := m.seen[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// Other returns the attributes of every unqueried meta and link element and
// marks them as queried. Returns nil when every element has been reported.
func (m *Meta) Other() []docmeta.Attributes {
	return m.attributeList(m.Unqueried())
}

// Document returns the underlying document.
func (m *Meta) Document() *goquery.Document {
	return m.doc
}

// DocumentHTML returns the inner HTML of the root html element.
func (m *Meta) DocumentHTML() string {
	return innerHTML(m.doc.Find("html"))
}

// HeadHTML returns the inner HTML of the head element.
func (m *Meta) HeadHTML() string {
	return innerHTML(m.doc.Find("head"))
}

// BodyHTML returns the inner HTML of the body element.
func (m *Meta) BodyHTML() string {
	return innerHTML(m.doc.Find("body"))
}

// HeadElements returns the child elements of head.
// The selection is empty when the document has no head.
func (m *Meta) HeadElements() *goquery.Selection {
	return m.doc.Find("head").First().Children()
}

// Title returns the text of the first title element with whitespace
// collapsed, or "" when there is none.
func (m *Meta) Title() string {
	title := m.doc.Find("title").First()
	if title.Length() == 0 {
		return ""
	}
	return strings.Join(strings.Fields(title.Text()), " ")
}

// Description returns the content of the description meta tag.
func (m *Meta) Description() (string, bool) {
	return m.first(selectorDescription, "")
}

// CanonicalURL returns the href of the canonical link.
func (m *Meta) CanonicalURL() (string, bool) {
	return m.first(selectorCanonical, "")
}

// Charset returns the charset attribute of the first meta tag declaring one.
func (m *Meta) Charset() (string, bool) {
	return m.first(selectorCharset, "charset")
}

// Robots returns the content of the robots meta tag.
func (m *Meta) Robots() (string, bool) {
	return m.first(selectorRobots, "")
}

// Viewport returns the content of the viewport meta tag.
func (m *Meta) Viewport() (string, bool) {
	return m.first(selectorViewport, "")
}

// Manifest returns the href of the web app manifest link.
func (m *Meta) Manifest() (string, bool) {
	return m.first(selectorManifest, "")
}

// Alternatives returns links whose rel contains "alternate".
func (m *Meta) Alternatives() []docmeta.Attributes { return m.all(selectorAlternatives) }

// Apple returns meta tags whose name starts with "apple-".
func (m *Meta) Apple() []docmeta.Attributes { return m.all(selectorApple) }

// AppLink returns App Links meta tags (property "al:*").
func (m *Meta) AppLink() []docmeta.Attributes { return m.all(selectorAppLink) }

// DNSPrefetch returns dns-prefetch resource hints.
func (m *Meta) DNSPrefetch() []docmeta.Attributes { return m.all(selectorDNSPrefetch) }

// Preconnect returns preconnect resource hints.
func (m *Meta) Preconnect() []docmeta.Attributes { return m.all(selectorPreconnect) }

// Prefetch returns prefetch resource hints.
func (m *Meta) Prefetch() []docmeta.Attributes { return m.all(selectorPrefetch) }

// Preload returns preload resource hints.
func (m *Meta) Preload() []docmeta.Attributes { return m.all(selectorPreload) }

// DublinCore returns Dublin Core meta tags (name "dc.*").
func (m *Meta) DublinCore() []docmeta.Attributes { return m.all(selectorDublinCore) }

// Favicons returns links whose rel contains "icon".
func (m *Meta) Favicons() []docmeta.Attributes { return m.all(selectorFavicons) }

// Opengraph returns Open Graph meta tags (property "og:*").
func (m *Meta) Opengraph() []docmeta.Attributes { return m.all(selectorOpengraph) }

// Twitter returns Twitter card meta tags declared by property. Tags declared
// by name are left for Other.
func (m *Meta) Twitter() []docmeta.Attributes { return m.all(selectorTwitter) }

// Stylesheets returns links whose rel contains "stylesheet".
func (m *Meta) Stylesheets() []docmeta.Attributes { return m.all(selectorStylesheets) }

// JSONLD parses every application/ld+json script. Scripts are not meta or
// link elements and are never added to the queried set.
// Returns nil when the document has no such scripts, or a
// *docmeta.ParseError for the first script holding malformed JSON.
func (m *Meta) JSONLD() ([]any, error) {
	scripts := m.doc.Find(selectorJSONLD)
	if scripts.Length() == 0 {
		return nil, nil
	}

	out := make([]any, 0, scripts.Length())
	for i := range scripts.Nodes {
		var v any
		if err := json.Unmarshal([]byte(scripts.Eq(i).Text()), &v); err != nil {
			return nil, &docmeta.ParseError{Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Data runs every accessor and assembles the aggregate record. Other is
// computed last so it holds only elements no named category claimed.
func (m *Meta) Data() (*docmeta.Metadata, error) {
	data := &docmeta.Metadata{
		Title:        m.Title(),
		Description:  optional(m.Description()),
		Apple:        m.Apple(),
		AppLink:      m.AppLink(),
		Charset:      optional(m.Charset()),
		Canonical:    optional(m.CanonicalURL()),
		Alternatives: m.Alternatives(),
		DublinCore:   m.DublinCore(),
		DNSPrefetch:  m.DNSPrefetch(),
		Favicons:     m.Favicons(),
	}

	jsonld, err := m.JSONLD()
	if err != nil {
		return nil, err
	}
	data.JSONLD = jsonld

	data.Manifest = optional(m.Manifest())
	data.Opengraph = m.Opengraph()
	data.Preconnect = m.Preconnect()
	data.Prefetch = m.Prefetch()
	data.Preload = m.Preload()
	data.Robots = optional(m.Robots())
	data.Stylesheets = m.Stylesheets()
	data.Twitter = m.Twitter()
	data.Viewport = optional(m.Viewport())
	data.Other = m.Other()

	return data, nil
}

// first reports the first element matching selector and returns the value
// of attr, or of the element's primary attribute when attr is empty.
func (m *Meta) first(selector, attr string) (string, bool) {
	sel := m.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}

	el := newElement(sel.Nodes[0])
	m.markQueried(el.node)

	if attr == "" {
		attr = el.kind.valueAttr()
	}
	value, _ := sel.Attr(attr)
	return value, true
}

// all reports every element matching selector and returns their attributes.
func (m *Meta) all(selector string) []docmeta.Attributes {
	return m.attributeList(m.doc.Find(selector).Nodes)
}

// attributeList marks nodes as queried and returns their attributes by
// position. Returns nil for no nodes.
func (m *Meta) attributeList(nodes []*html.Node) []docmeta.Attributes {
	if len(nodes) == 0 {
		return nil
	}

	list := make([]docmeta.Attributes, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, attributesOf(n))
		m.markQueried(n)
	}
	return list
}

// attributesOf maps a node's attributes by name. The first of duplicate
// attributes wins.
func attributesOf(n *html.Node) docmeta.Attributes {
	attrs := make(docmeta.Attributes, len(n.Attr))
	for _, a := range n.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		if _, ok := attrs[name]; ok {
			continue
		}
		attrs[name] = docmeta.Attribute{Name: name, Value: a.Val}
	}
	return attrs
}

// innerHTML renders the children of the first node in sel.
func innerHTML(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	s, err := sel.First().Html()
	if err != nil {
		return ""
	}
	return s
}

func optional(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}
