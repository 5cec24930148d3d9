package mock

import "github.com/fwojciec/docmeta"

var _ docmeta.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of docmeta.Formatter.
type Formatter struct {
	FormatFn func(m *docmeta.Metadata) ([]byte, error)
}

func (f *Formatter) Format(m *docmeta.Metadata) ([]byte, error) {
	return f.FormatFn(m)
}
