package main

import (
	"fmt"

	"github.com/fwojciec/docmeta"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docmeta.Errorf(docmeta.EINVALID, "use --force to confirm deletion")
	}

	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if docmeta.ErrorCode(err) == docmeta.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'docmeta list' to see stored records.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmeta.ErrorMessage(err))
		return err
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, rec.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmeta.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %s (%s)\n", rec.ID, rec.Source)
	return nil
}
