package main

import (
	"fmt"

	"github.com/fwojciec/docmeta"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if docmeta.ErrorCode(err) == docmeta.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'docmeta list' to see stored records.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmeta.ErrorMessage(err))
		return err
	}

	formatter, _ := newFormatter(c.Format)
	out, err := formatter.Format(rec.Metadata)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmeta.ErrorMessage(err))
		return err
	}

	_, err = deps.Stdout.Write(out)
	return err
}
