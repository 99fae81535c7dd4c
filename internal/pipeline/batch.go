// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"io"
)

// CategoryResult is the outcome of processing one category.
type CategoryResult struct {
	Key   string
	Items int
	Err   error
}

// Summary holds the outcome of a ProcessAll run.
type Summary struct {
	Results []CategoryResult
}

// Succeeded returns the number of categories processed without error.
func (s Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of categories that failed.
func (s Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

// HasFailures reports whether any category failed.
func (s Summary) HasFailures() bool {
	return s.Failed() > 0
}

// ProcessAll processes every registered category in order. A failing
// category is recorded and the run moves on; only cancellation stops it
// early.
func (p *Pipeline) ProcessAll(ctx context.Context, w io.Writer) (Summary, error) {
	var summary Summary
	for _, key := range p.Registry.Keys() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		fmt.Fprintf(w, "\n== %s ==\n", key)

		catalog, err := p.Process(ctx, key, w)
		r := CategoryResult{Key: key, Err: err}
		if catalog != nil {
			r.Items = len(catalog.Items)
		}
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", key, err)
		}
		summary.Results = append(summary.Results, r)
	}

	fmt.Fprintf(w, "\nsummary:\n")
	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Fprintf(w, "  %-10s failed: %v\n", r.Key, r.Err)
			continue
		}
		fmt.Fprintf(w, "  %-10s ok (%d items)\n", r.Key, r.Items)
	}
	fmt.Fprintf(w, "%d succeeded, %d failed\n", summary.Succeeded(), summary.Failed())
	return summary, nil
}
