package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/docmeta"
	"github.com/fwojciec/docmeta/fs"
	"golang.org/x/sync/errgroup"
)

// extraction is the outcome of extracting one input.
type extraction struct {
	metadata *docmeta.Metadata
	err      error
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	inputs, err := fs.ReadInputs(c.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmeta.ErrorMessage(err))
		return err
	}

	if len(inputs) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no HTML files found")
		return docmeta.Errorf(docmeta.ENOTFOUND, "no HTML files found")
	}

	formatter, ext := newFormatter(c.Format)

	var writer docmeta.RecordWriter
	if c.Out != "" {
		writer = fs.NewWriter(c.Out, ext, formatter)
	}

	results, err := extractAll(deps.Ctx, deps.Extractor, inputs, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: extraction aborted: %v\n", err)
		return err
	}

	// output path -> first source written there
	outputs := make(map[string]string)

	var failed, written int
	for i, in := range inputs {
		result := results[i]
		if result.err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", in.Path, docmeta.ErrorMessage(result.err))
			failed++
			continue
		}

		if writer != nil {
			out := fs.SourceToPath(in.Path, ext)
			if first, ok := outputs[out]; ok {
				fmt.Fprintf(deps.Stderr, "error: %s: output %s already written for %s\n", in.Path, out, first)
				failed++
				continue
			}
			outputs[out] = in.Path
		}

		rec := &docmeta.Record{
			Source:      in.Path,
			ContentHash: in.Hash,
			Metadata:    result.metadata,
		}

		if c.Save {
			if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", in.Path, docmeta.ErrorMessage(err))
				failed++
				continue
			}
		}

		if writer != nil {
			if err := writer.CreateRecord(deps.Ctx, rec); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", in.Path, docmeta.ErrorMessage(err))
				failed++
				continue
			}
			written++
			continue
		}

		out, err := formatter.Format(rec.Metadata)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", in.Path, docmeta.ErrorMessage(err))
			failed++
			continue
		}
		if _, err := deps.Stdout.Write(out); err != nil {
			return err
		}
	}

	if writer != nil {
		fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", written, c.Out)
	}

	if failed > 0 {
		return docmeta.Errorf(docmeta.EINVALID, "%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

// extractAll extracts every input with at most concurrency extractions in
// flight. Results are indexed like inputs. Extraction failures are kept
// per input; only cancellation of ctx fails the batch.
func extractAll(ctx context.Context, extractor docmeta.MetadataExtractor, inputs []*fs.Input, concurrency int) ([]extraction, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]extraction, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := extractor.Extract(in.HTML)
			results[i] = extraction{metadata: m, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
