package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docfind"
)

// Run executes the cache list command.
func (c *CacheListCmd) Run(deps *Dependencies) error {
	entries, err := deps.Cache.ListEntries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfind.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached keywords. Use 'docfind search' to populate the cache.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %d  %s\n", e.Key, e.Count, e.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	keys := c.Keys
	if len(keys) == 0 {
		entries, err := deps.Cache.ListEntries(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docfind.ErrorMessage(err))
			return err
		}
		for _, e := range entries {
			keys = append(keys, e.Key)
		}
	}

	for _, key := range keys {
		if err := deps.Cache.DeleteResults(deps.Ctx, key); err != nil {
			if docfind.ErrorCode(err) == docfind.ENOTFOUND {
				fmt.Fprintf(deps.Stderr, "error: key %q not found. Use 'docfind cache list' to see cached keys.\n", key)
			} else {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docfind.ErrorMessage(err))
			}
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Cleared %d cache entries\n", len(keys))
	return nil
}
