package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docmeta"
)

// SourceToPath converts a record source path to a relative output path
// with the given extension.
// Example: site/docs/index.html → site/docs/index.json
//
// The mapping is not injective: a/x.html and a/x.htm, or /a/x.html and
// a/x.html, share an output path. Callers writing several records detect
// such collisions themselves.
func SourceToPath(source, ext string) string {
	path := filepath.ToSlash(filepath.Clean(source))
	path = strings.TrimPrefix(path, filepath.ToSlash(filepath.VolumeName(source)))

	// Keep output inside the base directory
	for strings.HasPrefix(path, "../") {
		path = strings.TrimPrefix(path, "../")
	}
	path = strings.TrimLeft(path, "/")

	if path == "" || path == "." || path == ".." {
		return "index" + ext
	}

	return filepath.FromSlash(strings.TrimSuffix(path, filepath.Ext(path)) + ext)
}

// Ensure Writer implements docmeta.RecordWriter at compile time.
var _ docmeta.RecordWriter = (*Writer)(nil)

// Writer writes formatted metadata records as files below a directory.
type Writer struct {
	baseDir   string
	ext       string
	formatter docmeta.Formatter
}

// NewWriter creates a new Writer that writes to the given base directory,
// naming files after the record source with extension ext.
func NewWriter(baseDir, ext string, formatter docmeta.Formatter) *Writer {
	return &Writer{baseDir: baseDir, ext: ext, formatter: formatter}
}

// CreateRecord formats the record's metadata and writes it to disk.
func (w *Writer) CreateRecord(ctx context.Context, rec *docmeta.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	content, err := w.formatter.Format(rec.Metadata)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, SourceToPath(rec.Source, w.ext))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, content, 0644)
}
