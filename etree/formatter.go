// Package etree renders metadata records as XML using beevik/etree.
package etree

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/docmeta"
)

// Ensure Formatter implements docmeta.Formatter at compile time.
var _ docmeta.Formatter = (*Formatter)(nil)

// Formatter renders metadata as an indented XML document rooted at
// <metadata>. Fields keep the order of the metadata record; absent fields
// are written as empty elements with absent="true".
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders m as XML.
func (f *Formatter) Format(m *docmeta.Metadata) ([]byte, error) {
	if m == nil {
		return nil, docmeta.Errorf(docmeta.EINVALID, "metadata required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("metadata")

	root.CreateElement("title").SetText(m.Title)
	addString(root, "description", m.Description)
	addList(root, "apple", m.Apple)
	addList(root, "applink", m.AppLink)
	addString(root, "charset", m.Charset)
	addString(root, "canonical", m.Canonical)
	addList(root, "alternatives", m.Alternatives)
	addList(root, "dc", m.DublinCore)
	addList(root, "dnsPrefetch", m.DNSPrefetch)
	addList(root, "favicons", m.Favicons)
	if err := addJSONLD(root, m.JSONLD); err != nil {
		return nil, err
	}
	addString(root, "manifest", m.Manifest)
	addList(root, "opengraph", m.Opengraph)
	addList(root, "preconnect", m.Preconnect)
	addList(root, "prefetch", m.Prefetch)
	addList(root, "preload", m.Preload)
	addString(root, "robots", m.Robots)
	addList(root, "stylesheets", m.Stylesheets)
	addList(root, "twitter", m.Twitter)
	addString(root, "viewport", m.Viewport)
	addList(root, "other", m.Other)

	doc.Indent(2)
	return doc.WriteToBytes()
}

func addString(parent *etree.Element, tag string, value *string) {
	el := parent.CreateElement(tag)
	if value == nil {
		el.CreateAttr("absent", "true")
		return
	}
	el.SetText(*value)
}

func addList(parent *etree.Element, tag string, list []docmeta.Attributes) {
	el := parent.CreateElement(tag)
	if list == nil {
		el.CreateAttr("absent", "true")
		return
	}

	for i, attrs := range list {
		item := el.CreateElement("element")
		item.CreateAttr("index", strconv.Itoa(i))

		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			a := item.CreateElement("attribute")
			a.CreateAttr("name", attrs[name].Name)
			a.SetText(attrs[name].Value)
		}
	}
}

// addJSONLD writes each JSON-LD value as compact JSON text.
func addJSONLD(parent *etree.Element, values []any) error {
	el := parent.CreateElement("jsonld")
	if values == nil {
		el.CreateAttr("absent", "true")
		return nil
	}

	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		item := el.CreateElement("item")
		item.CreateAttr("index", strconv.Itoa(i))
		item.SetText(string(b))
	}
	return nil
}
