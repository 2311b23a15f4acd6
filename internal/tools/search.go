package tools

import (
	"context"
	"fmt"
)

// NoDescription stands in for search hits without a description.
const NoDescription = "No description"

// DefaultSearchLimit is the number of results fetched when none is given.
const DefaultSearchLimit = 5

// Search prints each hit as a block, in the order the service ranked them.
func (t *Toolkit) Search(ctx context.Context, query string, limit int) error {
	results, err := t.svc.Search(ctx, query, limit)
	if err != nil {
		return err
	}

	for _, r := range results {
		desc := r.Description
		if desc == "" {
			desc = NoDescription
		}
		fmt.Fprintf(t.out, "## %s\n", r.Title)
		fmt.Fprintf(t.out, "URL: %s\n", r.URL)
		fmt.Fprintln(t.out, desc)
		fmt.Fprint(t.out, separator)
	}
	return nil
}

const separator = "\n---\n\n"
