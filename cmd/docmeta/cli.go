package main

import (
	"context"
	"io"

	"github.com/fwojciec/docmeta"
	"github.com/fwojciec/docmeta/etree"
	"github.com/fwojciec/docmeta/sqlite"
	"github.com/fwojciec/docmeta/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Records   docmeta.RecordService
	Extractor docmeta.MetadataExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log extraction and storage operations to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract metadata from HTML files or directories"`
	List    ListCmd    `cmd:"" help:"List stored records"`
	Show    ShowCmd    `cmd:"" help:"Print a stored record"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored record"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Paths       []string `arg:"" name:"path" help:"HTML files or directories"`
	Format      string   `short:"f" enum:"json,xml,yaml" default:"json" help:"Output format (json, xml, yaml)"`
	Out         string   `short:"o" help:"Write one file per input below this directory"`
	Save        bool     `short:"s" help:"Store records in the database"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `help:"Only list records for this source path"`
	Limit  int    `short:"n" help:"Maximum number of records to list"`
	Offset int    `help:"Number of records to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Record ID"`
	Format string `short:"f" enum:"json,xml,yaml" default:"json" help:"Output format (json, xml, yaml)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}

// newFormatter returns the formatter and file extension for an output
// format name. Unknown names fall back to JSON.
func newFormatter(format string) (docmeta.Formatter, string) {
	switch format {
	case "xml":
		return etree.NewFormatter(), ".xml"
	case "yaml":
		return yaml.NewFormatter(), ".yaml"
	}
	return &docmeta.JSONFormatter{}, ".json"
}
