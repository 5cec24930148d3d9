// Package goquery implements metadata extraction over goquery documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmeta"
)

// Ensure Extractor implements docmeta.MetadataExtractor at compile time.
var _ docmeta.MetadataExtractor = (*Extractor)(nil)

// Extractor parses raw HTML with goquery and extracts its metadata record.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the aggregate metadata record.
func (e *Extractor) Extract(html string) (*docmeta.Metadata, error) {
	if strings.TrimSpace(html) == "" {
		return nil, docmeta.Errorf(docmeta.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docmeta.Errorf(docmeta.EINVALID, "failed to parse HTML: %v", err)
	}

	return NewMeta(doc).Data()
}
