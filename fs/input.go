// Package fs provides file-based input and output for metadata extraction.
package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docmeta"
)

// Input is an HTML document read from disk.
type Input struct {
	Path string
	HTML string
	Hash string
}

// HashContent computes a hash of the content using xxhash.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%016x", h)
}

// isHTMLFile reports whether name has an HTML extension.
func isHTMLFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// ReadInputs reads every path. Directories are walked for .html and .htm
// files in lexical order; files are read regardless of extension.
// Returns ENOTFOUND if a path does not exist.
func ReadInputs(paths []string) ([]*Input, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, docmeta.Errorf(docmeta.ENOTFOUND, "input %q not found", p)
		}
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isHTMLFile(d.Name()) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	inputs := make([]*Input, 0, len(files))
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		content := string(b)
		inputs = append(inputs, &Input{
			Path: f,
			HTML: content,
			Hash: HashContent(content),
		})
	}
	return inputs, nil
}
