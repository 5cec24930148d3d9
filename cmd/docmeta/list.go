package main

import (
	"fmt"

	"github.com/fwojciec/docmeta"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := docmeta.RecordFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmeta.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'docmeta extract --save' to store some.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, docmeta.FormatRecords(recs))
	return nil
}
