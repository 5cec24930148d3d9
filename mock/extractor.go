package mock

import "github.com/fwojciec/docmeta"

var _ docmeta.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of docmeta.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(html string) (*docmeta.Metadata, error)
}

func (e *MetadataExtractor) Extract(html string) (*docmeta.Metadata, error) {
	return e.ExtractFn(html)
}
